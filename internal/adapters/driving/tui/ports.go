// Package tui provides an interactive fraction calculator for the terminal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/fraction/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Calculator evaluates expressions.
	Calculator driving.CalculatorService

	// Settings supplies the decimal precision. Optional.
	Settings driving.SettingsService

	// SettingsChanges signals that settings were changed on disk, e.g. by
	// "fraction settings set" in another terminal. Optional.
	SettingsChanges <-chan struct{}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
