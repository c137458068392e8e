// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/fraction/internal/core/domain"
)

// EvaluationCompleted carries an evaluation outcome back to the model.
type EvaluationCompleted struct {
	Input  string
	Result domain.Result
	Err    error
}

// SettingsLoaded carries the settings read at start-up.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsChanged is sent when the persisted settings change.
type SettingsChanged struct{}
