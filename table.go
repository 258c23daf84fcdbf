package hashtab

import "fmt"

// Table is a fixed-size hash table storing items of any comparable type.
// It never grows: the slot count chosen at construction is the slot count
// for the table's lifetime, and "resizing" means building a new table and
// re-inserting the surviving items. Sizing at a prime (see NextPrime)
// guarantees that rehashing collision resolution can reach every slot.
//
// Items are placed by a deterministic probe sequence derived only from the
// item's fingerprint and the table's configuration, so two tables with the
// same configuration and insertion order assign identical slots.
//
// A Table is not safe for concurrent use; callers serialize access.
type Table[K comparable] struct {
	size      int
	hashing   Hashing
	collision Collision

	// Open-addressing payload: one item per slot plus a tombstone flag.
	// state[i] means slot i was occupied at least once and later vacated,
	// which is distinct from never occupied for probe termination.
	items    []K
	occupied []bool
	state    []bool

	// Chaining payload: one bucket list per slot, nil while empty.
	buckets []*List[K]

	nSlots int
	nItems int
}

type config[K comparable] struct {
	hashing   Hashing
	collision Collision
	seed      []K
}

type Option[K comparable] func(*config[K])

// WithHashing overrides the default remainder hashing method.
func WithHashing[K comparable](h Hashing) Option[K] {
	return func(c *config[K]) {
		c.hashing = h
	}
}

// WithCollision overrides the default chaining collision strategy.
func WithCollision[K comparable](c Collision) Option[K] {
	return func(cfg *config[K]) {
		cfg.collision = c
	}
}

// WithSeed inserts the given items during construction, in order.
func WithSeed[K comparable](items ...K) Option[K] {
	return func(c *config[K]) {
		c.seed = items
	}
}

// New returns a table with the given slot count. Defaults are remainder
// hashing and chaining collision resolution. Returns ErrInvalidConfig for
// a non-positive size or unusable strategy parameters, and ErrTableFull if
// the seed items overflow an open-addressed table.
func New[K comparable](size int, opts ...Option[K]) (*Table[K], error) {
	cfg := config[K]{hashing: Remainder(), collision: Chaining()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidConfig, size)
	}
	if err := cfg.hashing.validate(); err != nil {
		return nil, err
	}
	if err := cfg.collision.validate(); err != nil {
		return nil, err
	}

	t := &Table[K]{size: size, hashing: cfg.hashing, collision: cfg.collision}
	if t.collision.chained() {
		t.buckets = make([]*List[K], size)
	} else {
		t.items = make([]K, size)
		t.occupied = make([]bool, size)
		t.state = make([]bool, size)
	}

	for _, item := range cfg.seed {
		if _, err := t.Insert(item); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Size returns the slot count.
func (t *Table[K]) Size() int { return t.size }

// Len returns the number of stored items.
func (t *Table[K]) Len() int { return t.nItems }

// Slots returns the number of occupied slots. Under chaining a non-empty
// bucket counts as one slot regardless of its length; under open
// addressing Slots equals Len.
func (t *Table[K]) Slots() int { return t.nSlots }

// LoadFactor returns occupied slots over total slots, in [0, 1].
func (t *Table[K]) LoadFactor() float64 {
	return float64(t.nSlots) / float64(t.size)
}

func (t *Table[K]) home(item K) int {
	return t.hashing.slot(fingerprint(item), t.size)
}

// Insert places an item and returns the slot it landed in. Chaining always
// succeeds, appending colliders to the slot's bucket. Open addressing
// follows the probe sequence until a never-occupied slot turns up,
// visiting at most Size slots before giving up with ErrTableFull; a failed
// insert leaves the table untouched.
//
// Tombstoned slots are probed through, not reused: only a never-occupied
// slot terminates the probe. Reclaiming tombstones would change the slot
// an item lands on after delete/insert sequences, so a table sheds
// tombstones only through Clear or a rebuild.
func (t *Table[K]) Insert(item K) (int, error) {
	home := t.home(item)

	if t.collision.chained() {
		if t.buckets[home] == nil {
			t.buckets[home] = NewList[K]()
			t.nSlots++
		}
		t.buckets[home].PushBack(item)
		t.nItems++

		return home, nil
	}

	for i := 0; i < t.size; i++ {
		slot := t.collision.probe(home, i, t.size)
		if t.occupied[slot] || t.state[slot] {
			continue
		}

		t.items[slot] = item
		t.occupied[slot] = true
		t.nSlots++
		t.nItems++

		return slot, nil
	}

	return 0, ErrTableFull
}

// Search returns the slot holding the item. It replays the same probe
// sequence Insert used: occupied slots are compared, tombstoned slots are
// stepped over, and the first never-occupied slot ends the search.
func (t *Table[K]) Search(item K) (int, bool) {
	home := t.home(item)

	if t.collision.chained() {
		b := t.buckets[home]
		if b == nil || b.Find(item) == nil {
			return 0, false
		}

		return home, true
	}

	for i := 0; i < t.size; i++ {
		slot := t.collision.probe(home, i, t.size)

		if t.occupied[slot] && t.items[slot] == item {
			return slot, true
		}
		if !t.occupied[slot] && !t.state[slot] {
			return 0, false
		}
	}

	return 0, false
}

// Delete removes one occurrence of the item. Returns false if the item is
// not in the table. A drained chaining bucket frees its slot; an
// open-addressed slot is tombstoned so later searches keep probing past
// it.
func (t *Table[K]) Delete(item K) bool {
	if t.collision.chained() {
		home := t.home(item)

		b := t.buckets[home]
		if b == nil {
			return false
		}
		n := b.Find(item)
		if n == nil {
			return false
		}

		b.RemoveNode(n)
		if b.IsEmpty() {
			t.buckets[home] = nil
			t.nSlots--
		}
		t.nItems--

		return true
	}

	slot, ok := t.Search(item)
	if !ok {
		return false
	}

	var zero K
	t.items[slot] = zero
	t.occupied[slot] = false
	t.state[slot] = true
	t.nSlots--
	t.nItems--

	return true
}

// At returns the single item stored at the given slot of an
// open-addressed table. Returns false for out-of-range slots, unoccupied
// slots and chaining tables (whose slots hold buckets, see Items).
func (t *Table[K]) At(slot int) (K, bool) {
	var zero K
	if t.collision.chained() || slot < 0 || slot >= t.size || !t.occupied[slot] {
		return zero, false
	}

	return t.items[slot], true
}

// Entry is one occupied slot of a table: the slot index plus its payload.
// Under chaining Items holds the whole bucket in insertion order; under
// open addressing it holds exactly one item.
type Entry[K comparable] struct {
	Slot  int
	Items []K
}

// Items enumerates occupied slots in ascending slot order. Ordering across
// slots is positional, not insertion order.
func (t *Table[K]) Items() []Entry[K] {
	entries := make([]Entry[K], 0, t.nSlots)

	for slot := 0; slot < t.size; slot++ {
		switch {
		case t.collision.chained():
			if b := t.buckets[slot]; b != nil {
				entries = append(entries, Entry[K]{Slot: slot, Items: b.Items()})
			}
		case t.occupied[slot]:
			entries = append(entries, Entry[K]{Slot: slot, Items: []K{t.items[slot]}})
		}
	}

	return entries
}

// Clear resets the table to the empty state, dropping tombstones as well.
func (t *Table[K]) Clear() {
	if t.collision.chained() {
		clear(t.buckets)
	} else {
		clear(t.items)
		clear(t.occupied)
		clear(t.state)
	}

	t.nSlots = 0
	t.nItems = 0
}

// Stats reports a snapshot of the table's occupancy.
func (t *Table[K]) Stats() Stats {
	tombstones := 0
	for _, dead := range t.state {
		if dead {
			tombstones++
		}
	}

	return Stats{
		Size:       t.size,
		Slots:      t.nSlots,
		Items:      t.nItems,
		Tombstones: tombstones,
		LoadFactor: t.LoadFactor(),
	}
}
