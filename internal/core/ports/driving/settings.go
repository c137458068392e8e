package driving

import (
	"context"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting from its textual form,
	// e.g. Set("primes.limit", "100").
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Watch signals whenever the persisted settings change. It returns a
	// nil channel when the underlying store cannot be watched.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
