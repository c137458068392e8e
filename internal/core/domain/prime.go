package domain

import (
	"fmt"
	"math"
)

// MaxPrimeCandidate is the largest number accepted from callers for a
// single primality check. Trial division runs up to a million divisions.
const MaxPrimeCandidate = 1_000_000_000_000

// PrimeCheck pairs a number with its primality.
type PrimeCheck struct {
	N     int
	Prime bool
}

// IsPrime reports whether n is prime using trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	limit := int(math.Sqrt(float64(n)))
	for i := 2; i <= limit; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// CheckPrimeCandidate fails with ErrInvalidInput when n exceeds
// MaxPrimeCandidate.
func CheckPrimeCandidate(n int) error {
	if n > MaxPrimeCandidate {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidInput, n, MaxPrimeCandidate)
	}
	return nil
}

// ClassifyRange checks every integer in 1..limit.
// A limit below 1 yields an empty slice.
func ClassifyRange(limit int) []PrimeCheck {
	if limit < 1 {
		return []PrimeCheck{}
	}
	checks := make([]PrimeCheck, 0, limit)
	for n := 1; n <= limit; n++ {
		checks = append(checks, PrimeCheck{N: n, Prime: IsPrime(n)})
	}
	return checks
}

// Primes returns the primes in 1..limit in ascending order.
func Primes(limit int) []int {
	primes := []int{}
	for _, c := range ClassifyRange(limit) {
		if c.Prime {
			primes = append(primes, c.N)
		}
	}
	return primes
}
