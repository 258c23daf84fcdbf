package hashtab

// Pair is one key/value entry of a Dict.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Dict is a fixed-size dictionary built on a Table. Keys live in a
// rehashing hash table and values in a slice aligned slot-for-slot with
// it: values[i] is meaningful exactly when the key table holds a key at
// slot i. All placement decisions are delegated to the table; the Dict
// never probes on its own. Like the table it cannot grow in place, Resize
// builds a fresh Dict and re-inserts every entry.
//
// A Dict is not safe for concurrent use.
type Dict[K comparable, V any] struct {
	keys   *Table[K]
	values []V
}

type dictConfig[K comparable, V any] struct {
	skip int
	seed []Pair[K, V]
}

type DictOption[K comparable, V any] func(*dictConfig[K, V])

// WithSkip sets the probe skip of the underlying rehashing table.
func WithSkip[K comparable, V any](skip int) DictOption[K, V] {
	return func(c *dictConfig[K, V]) {
		c.skip = skip
	}
}

// WithPairs puts the given pairs during construction, in order.
func WithPairs[K comparable, V any](pairs ...Pair[K, V]) DictOption[K, V] {
	return func(c *dictConfig[K, V]) {
		c.seed = pairs
	}
}

// NewDict returns a dictionary with the given slot count. The default
// probe skip is 1. A prime size keeps the key table's probe sequences
// complete, so every slot stays reachable.
func NewDict[K comparable, V any](size int, opts ...DictOption[K, V]) (*Dict[K, V], error) {
	cfg := dictConfig[K, V]{skip: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	keys, err := New[K](size, WithCollision[K](Rehashing(cfg.skip)))
	if err != nil {
		return nil, err
	}

	d := &Dict[K, V]{keys: keys, values: make([]V, size)}
	for _, p := range cfg.seed {
		if _, err := d.Put(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Size returns the slot count.
func (d *Dict[K, V]) Size() int { return d.keys.Size() }

// Len returns the number of stored entries.
func (d *Dict[K, V]) Len() int { return d.keys.Len() }

func (d *Dict[K, V]) IsEmpty() bool { return d.keys.Len() == 0 }

// LoadFactor returns stored entries over total slots.
func (d *Dict[K, V]) LoadFactor() float64 {
	return float64(d.keys.Len()) / float64(d.keys.Size())
}

// Put stores a value under a key and returns the slot used. An existing
// key has its value overwritten in place; a new key is placed by the key
// table. Returns ErrTableFull, with the Dict unchanged, when the key table
// has no reachable slot left.
func (d *Dict[K, V]) Put(key K, value V) (int, error) {
	if slot, ok := d.keys.Search(key); ok {
		d.values[slot] = value
		return slot, nil
	}

	slot, err := d.keys.Insert(key)
	if err != nil {
		return 0, err
	}
	d.values[slot] = value

	return slot, nil
}

// Get returns the value stored under a key.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	slot, ok := d.keys.Search(key)
	if !ok {
		var zero V
		return zero, false
	}

	return d.values[slot], true
}

// Has reports whether a key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.keys.Search(key)
	return ok
}

// Remove deletes a key and its value. Returns false if the key is not
// present. The key table lays a tombstone, so probe chains through the
// vacated slot stay intact.
func (d *Dict[K, V]) Remove(key K) bool {
	slot, ok := d.keys.Search(key)
	if !ok {
		return false
	}

	d.keys.Delete(key)

	var zero V
	d.values[slot] = zero

	return true
}

// Entries returns all key/value pairs in ascending slot order.
func (d *Dict[K, V]) Entries() []Pair[K, V] {
	entries := make([]Pair[K, V], 0, d.keys.Len())
	for _, e := range d.keys.Items() {
		entries = append(entries, Pair[K, V]{Key: e.Items[0], Value: d.values[e.Slot]})
	}

	return entries
}

// Keys returns all keys in ascending slot order.
func (d *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.keys.Len())
	for _, e := range d.keys.Items() {
		keys = append(keys, e.Items[0])
	}

	return keys
}

// Values returns all values in ascending slot order.
func (d *Dict[K, V]) Values() []V {
	values := make([]V, 0, d.keys.Len())
	for _, e := range d.keys.Items() {
		values = append(values, d.values[e.Slot])
	}

	return values
}

// Resize builds a new dictionary with the given size and skip and
// re-inserts every entry. This is the only way to change capacity or shed
// the key table's tombstones. Returns ErrTableFull if the entries do not
// fit the new size.
func (d *Dict[K, V]) Resize(size, skip int) (*Dict[K, V], error) {
	return NewDict[K, V](size, WithSkip[K, V](skip), WithPairs(d.Entries()...))
}

// Clear removes every entry.
func (d *Dict[K, V]) Clear() {
	d.keys.Clear()
	clear(d.values)
}

// Stats reports the underlying key table's occupancy.
func (d *Dict[K, V]) Stats() Stats {
	return d.keys.Stats()
}
