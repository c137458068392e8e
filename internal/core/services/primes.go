package services

import (
	"fmt"

	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/ports/driving"
	"github.com/custodia-labs/fraction/internal/logger"
)

// Ensure PrimeService implements the interface.
var _ driving.PrimeService = (*PrimeService)(nil)

// PrimeService answers primality questions over bounded ranges.
type PrimeService struct {
	settings driving.SettingsService
}

// NewPrimeService creates a new prime service.
// settings may be nil, in which case defaults apply.
func NewPrimeService(settings driving.SettingsService) *PrimeService {
	return &PrimeService{settings: settings}
}

// IsPrime reports whether n is prime.
func (s *PrimeService) IsPrime(n int) bool {
	return domain.IsPrime(n)
}

// Classify checks every integer in 1..limit.
// A limit of zero or less uses the configured default.
func (s *PrimeService) Classify(limit int) ([]domain.PrimeCheck, error) {
	if limit <= 0 {
		limit = s.defaultLimit()
	}
	if limit > domain.MaxPrimeLimit {
		return nil, fmt.Errorf("%w: limit %d exceeds %d", domain.ErrInvalidInput, limit, domain.MaxPrimeLimit)
	}

	logger.Debug("Classifying 1..%d", limit)
	return domain.ClassifyRange(limit), nil
}

func (s *PrimeService) defaultLimit() int {
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			return settings.Primes.Limit
		}
	}
	return domain.DefaultAppSettings().Primes.Limit
}
