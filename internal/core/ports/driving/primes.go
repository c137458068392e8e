package driving

import "github.com/custodia-labs/fraction/internal/core/domain"

// PrimeService answers primality questions.
type PrimeService interface {
	// IsPrime reports whether n is prime.
	IsPrime(n int) bool

	// Classify checks every integer in 1..limit.
	// A limit of zero or less uses the configured default.
	Classify(limit int) ([]domain.PrimeCheck, error)
}
