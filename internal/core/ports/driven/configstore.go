package driven

import "context"

// ConfigStore provides access to application configuration.
// Keys use dot notation matching the TOML tables, e.g. "primes.limit".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// SetMany stores several values and persists them in a single write.
	// When the write fails none of the values are kept.
	SetMany(values map[string]any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns where the configuration is kept.
	Path() string
}

// ConfigWatcher is implemented by config stores that can report changes
// made to their backing storage, e.g. by another process.
type ConfigWatcher interface {
	// Watch reloads the configuration after every change and signals on the
	// returned channel. The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
