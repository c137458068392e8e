// Package services implements the driving port interfaces.
// Services contain the core application logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies
// beyond ID generation.
package services
