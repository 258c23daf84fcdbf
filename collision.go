package hashtab

import "fmt"

type collisionMode uint8

const (
	collisionUnset collisionMode = iota
	collisionChaining
	collisionRehashing
	collisionQuadratic
)

// Collision selects the collision resolution strategy for a table. The
// zero value is not usable; construct one with Chaining, Rehashing or
// Quadratic.
//
// The open-addressing strategies share one probe formula,
//
//	slot(i) = (home + (skip + fact*i) * i) mod size
//
// with fact = 0 for rehashing and skip = 0 for quadratic probing.
type Collision struct {
	mode collisionMode
	skip int
	fact int
}

// Chaining stores colliding items in a per-slot bucket list. Insertion
// never fails.
func Chaining() Collision {
	return Collision{mode: collisionChaining}
}

// Rehashing probes home, home+skip, home+2*skip, ... mod size. Any nonzero
// skip visits every slot when the table size is prime.
func Rehashing(skip int) Collision {
	return Collision{mode: collisionRehashing, skip: skip}
}

// Quadratic probes home, home+f, home+4f, home+9f, ... mod size. Unlike
// rehashing there is no size that guarantees the sequence visits every
// slot.
func Quadratic(fact int) Collision {
	return Collision{mode: collisionQuadratic, fact: fact}
}

func (c Collision) String() string {
	switch c.mode {
	case collisionChaining:
		return "chaining"
	case collisionRehashing:
		return "rehashing"
	case collisionQuadratic:
		return "quadratic"
	default:
		return "unset"
	}
}

func (c Collision) validate() error {
	switch c.mode {
	case collisionChaining:
	case collisionRehashing:
		if c.skip == 0 {
			return fmt.Errorf("%w: rehashing skip must be nonzero", ErrInvalidConfig)
		}
	case collisionQuadratic:
		if c.fact <= 0 {
			return fmt.Errorf("%w: quadratic factor %d", ErrInvalidConfig, c.fact)
		}
	default:
		return fmt.Errorf("%w: unrecognized collision strategy", ErrInvalidConfig)
	}

	return nil
}

func (c Collision) chained() bool {
	return c.mode == collisionChaining
}

// probe returns the i-th slot of the probe sequence rooted at home.
// probe(home, 0, size) is always home itself.
func (c Collision) probe(home, i, size int) int {
	slot := (home + (c.skip+c.fact*i)*i) % size
	if slot < 0 {
		slot += size
	}

	return slot
}
