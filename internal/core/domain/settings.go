package domain

import "fmt"

// Setting bounds.
const (
	// MaxPrimeLimit caps the range enumerated by the prime printer.
	MaxPrimeLimit = 1_000_000

	// MaxPrecision is the largest number of decimal places rendered.
	MaxPrecision = 15
)

// PrimeSettings holds prime printer configuration.
type PrimeSettings struct {
	// Limit is the upper bound of the printed range 1..Limit.
	Limit int

	// Highlight colours primes when the output is a terminal.
	Highlight bool
}

// OutputSettings holds result rendering configuration.
type OutputSettings struct {
	// Precision is the number of decimal places for decimal approximations.
	Precision int
}

// HistorySettings holds calculation history configuration.
type HistorySettings struct {
	// Enabled records every successful calculation.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Primes  PrimeSettings
	Output  OutputSettings
	History HistorySettings
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Primes: PrimeSettings{
			Limit:     50,
			Highlight: true,
		},
		Output: OutputSettings{
			Precision: 2,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// Validate checks that all settings are within bounds.
func (s AppSettings) Validate() error {
	if s.Primes.Limit < 1 || s.Primes.Limit > MaxPrimeLimit {
		return fmt.Errorf("%w: primes limit must be between 1 and %d", ErrInvalidInput, MaxPrimeLimit)
	}
	if s.Output.Precision < 0 || s.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be between 0 and %d", ErrInvalidInput, MaxPrecision)
	}
	return nil
}
