package mcp

import (
	"github.com/custodia-labs/fraction/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Calculator evaluates expressions.
	Calculator driving.CalculatorService

	// Primes answers primality questions.
	Primes driving.PrimeService

	// History exposes recorded calculations. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	if p.Primes == nil {
		return ErrMissingPrimeService
	}
	return nil
}
