/*
Primes Module - Persistent Prime Cache and Factorization
=========================================================

This module underlies all of the rational package's reduction and
common-denominator arithmetic. It keeps a single, process-local, ascending
list of primes (never shrinking, never reordered) and grows it lazily as
larger factorizations are requested.

Factorization walks the cached prime list up to floor(sqrt(v)); once that
list is exhausted short of the limit, it extends the cache one trial divisor
at a time, verifying primality of each candidate by recursively factoring it
(a candidate is prime iff its own factorization is itself). This is not
thread-safe: primeList is mutated without a lock, matching the original
design's open question about concurrent use.
*/
package primes

import "math"

var primeList = []int64{2}

// Factorize returns the prime factorization of v in ascending order, with
// repeated primes appearing once per multiplicity (e.g. Factorize(60) =
// [2 2 3 5]). Values below 2 have no factorization and return nil.
func Factorize(v int64) []int64 {
	if v < 2 {
		return nil
	}

	limit := int64(math.Sqrt(float64(v)))

	for _, p := range primeList {
		if p > limit {
			break
		}
		if v%p == 0 {
			return append([]int64{p}, Factorize(v/p)...)
		}
	}

	// The cached list didn't reach a factor: extend it one candidate at a
	// time, verifying primality before caching, until we either find a
	// factor of v or exhaust every candidate up to the limit.
	candidate := primeList[len(primeList)-1] + 1
	for candidate <= limit {
		if isPrime(candidate) {
			primeList = append(primeList, candidate)
			if v%candidate == 0 {
				return append([]int64{candidate}, Factorize(v/candidate)...)
			}
		}
		candidate++
	}

	// No factor at or below floor(sqrt(v)): v is itself prime. It is not
	// cached here: the primes between the cache's end and v are unknown, and
	// the list must stay ascending and gap-free for the walk above.
	return []int64{v}
}

// isPrime decides primality by recursively factoring candidate: it is prime
// iff its own factorization is the single-element list [candidate].
func isPrime(candidate int64) bool {
	factors := Factorize(candidate)
	return len(factors) == 1 && factors[0] == candidate
}

// GCD reduces the greatest common divisor over one or more non-negative
// integers. It walks the factorization of the first value, and for each
// prime that still divides the running residual of the rest, folds that
// prime into the result and divides the residual by it.
func GCD(values ...int64) int64 {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, v := range values[1:] {
		result = gcdPair(result, v)
	}
	return result
}

func gcdPair(a, b int64) int64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	g := int64(1)
	residual := b
	for _, p := range Factorize(a) {
		if residual%p == 0 {
			g *= p
			residual /= p
		}
	}
	return g
}

// LCM reduces the least common multiple over one or more positive integers.
func LCM(values ...int64) int64 {
	if len(values) == 0 {
		return 1
	}
	result := values[0]
	for _, v := range values[1:] {
		result = lcmPair(result, v)
	}
	return result
}

func lcmPair(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return (a / gcdPair(a, b)) * b
}
