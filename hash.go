package hashtab

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultMultiplierC is the fractional part of the golden ratio, the
	// classic constant for multiplication hashing.
	DefaultMultiplierC = 0.618034

	// DefaultFoldingDigit is the digit-group width for folding hashing.
	DefaultFoldingDigit = 2
)

// fingerprint converts an item into the integer the hashing methods work
// on: the item is rendered as a string and its character codes are summed
// with a 1-based positional weight. Items that render to the same string
// always produce the same fingerprint.
func fingerprint[K comparable](item K) uint64 {
	var v uint64

	pos := uint64(1)
	for _, r := range fmt.Sprint(item) {
		v += uint64(r) * pos
		pos++
	}

	return v
}

type hashMode uint8

const (
	hashUnset hashMode = iota
	hashRemainder
	hashMultiplication
	hashFolding
)

// Hashing selects how a fingerprint is mapped to a base slot. The zero
// value is not usable; construct one with Remainder, Multiplication or
// Folding.
type Hashing struct {
	mode  hashMode
	c     float64
	digit int
}

// Remainder hashes with slot = fingerprint mod size.
func Remainder() Hashing {
	return Hashing{mode: hashRemainder}
}

// Multiplication hashes with slot = floor(size * frac(fingerprint * c)).
// The constant c must be in (0, 1); DefaultMultiplierC is the usual choice.
func Multiplication(c float64) Hashing {
	return Hashing{mode: hashMultiplication, c: c}
}

// Folding splits the decimal rendering of the fingerprint into digit-wide
// groups, sums the groups and reduces the sum mod size. The last group may
// be narrower than digit.
func Folding(digit int) Hashing {
	return Hashing{mode: hashFolding, digit: digit}
}

func (h Hashing) String() string {
	switch h.mode {
	case hashRemainder:
		return "remainder"
	case hashMultiplication:
		return "multiplication"
	case hashFolding:
		return "folding"
	default:
		return "unset"
	}
}

func (h Hashing) validate() error {
	switch h.mode {
	case hashRemainder:
	case hashMultiplication:
		if h.c <= 0 || h.c >= 1 {
			return fmt.Errorf("%w: multiplication constant %v outside (0, 1)", ErrInvalidConfig, h.c)
		}
	case hashFolding:
		if h.digit <= 0 {
			return fmt.Errorf("%w: folding group width %d", ErrInvalidConfig, h.digit)
		}
	default:
		return fmt.Errorf("%w: unrecognized hashing method", ErrInvalidConfig)
	}

	return nil
}

// slot maps a fingerprint to a base slot in [0, size). Pure function of
// (fingerprint, size, method parameters), so probe sequences derived from
// it are fully reproducible.
func (h Hashing) slot(v uint64, size int) int {
	switch h.mode {
	case hashMultiplication:
		_, frac := math.Modf(float64(v) * h.c)
		return int(math.Floor(float64(size) * frac))

	case hashFolding:
		s := strconv.FormatUint(v, 10)

		sum := 0
		for i := 0; i < len(s); i += h.digit {
			group, _ := strconv.Atoi(s[i:min(i+h.digit, len(s))])
			sum += group
		}

		return sum % size

	default:
		return int(v % uint64(size))
	}
}
