package hashtab

import (
	"math/bits"
	"math/rand/v2"
)

// IsPrime reports whether n is prime, using trial division with the 6k±1
// wheel. Exact for the full uint64 range.
func IsPrime(n uint64) bool {
	if n <= 3 {
		return n > 1
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// IsPrimeFermat reports whether n is prime, testing k random Fermat
// witnesses. A false result is exact (a failed witness proves n
// composite); a true result is wrong with probability about 2^-k.
func IsPrimeFermat(n uint64, k int) bool {
	switch {
	case n < 2, n == 4:
		return false
	case n < 4:
		return true
	}

	for range k {
		a := 2 + rand.Uint64N(n-3) // witness in [2, n-2]
		if powmod(a, n-1, n) != 1 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest prime >= n. Sizing a table at a prime
// makes rehashing probe sequences visit every slot.
func NextPrime(n uint64) uint64 {
	for !IsPrime(n) {
		n++
	}

	return n
}

// NextPrimeFermat is NextPrime using the Fermat test with k witnesses.
func NextPrimeFermat(n uint64, k int) uint64 {
	for !IsPrimeFermat(n, k) {
		n++
	}

	return n
}

// powmod returns (a ^ e) mod m by iterated squaring.
func powmod(a, e, m uint64) uint64 {
	if m == 1 {
		return 0
	}

	res := uint64(1)
	a %= m
	for e > 0 {
		if e&1 == 1 {
			res = mulmod(res, a, m)
		}
		a = mulmod(a, a, m)
		e >>= 1
	}

	return res
}

// mulmod returns (a * b) mod m through a 128-bit intermediate, so the
// product cannot overflow. Requires a, b < m, which the callers maintain.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)

	return rem
}
