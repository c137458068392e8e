package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/ports/driven"
	"github.com/custodia-labs/fraction/internal/core/ports/driving"
	"github.com/custodia-labs/fraction/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPrimesLimit     = "primes.limit"
	keyPrimesHighlight = "primes.highlight"
	keyOutputPrecision = "output.precision"
	keyHistoryEnabled  = "history.enabled"
)

// settingKeys lists the recognised keys in display order.
var settingKeys = []string{keyPrimesLimit, keyPrimesHighlight, keyOutputPrecision, keyHistoryEnabled}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Primes: domain.PrimeSettings{
			Limit:     s.getInt(keyPrimesLimit, defaults.Primes.Limit),
			Highlight: s.getBool(keyPrimesHighlight, defaults.Primes.Highlight),
		},
		Output: domain.OutputSettings{
			Precision: s.getInt(keyOutputPrecision, defaults.Output.Precision),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	if settings.Primes.Limit < 1 || settings.Primes.Limit > domain.MaxPrimeLimit {
		logger.Warn("Ignoring out-of-range %s=%d", keyPrimesLimit, settings.Primes.Limit)
		settings.Primes.Limit = defaults.Primes.Limit
	}
	if settings.Output.Precision < 0 || settings.Output.Precision > domain.MaxPrecision {
		logger.Warn("Ignoring out-of-range %s=%d", keyOutputPrecision, settings.Output.Precision)
		settings.Output.Precision = defaults.Output.Precision
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	err := s.configStore.SetMany(map[string]any{
		keyPrimesLimit:     settings.Primes.Limit,
		keyPrimesHighlight: settings.Primes.Highlight,
		keyOutputPrecision: settings.Output.Precision,
		keyHistoryEnabled:  settings.History.Enabled,
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	logger.Debug("Saved settings to %s", s.configStore.Path())
	return nil
}

// Set updates a single setting from its textual form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyPrimesLimit:
		settings.Primes.Limit, err = strconv.Atoi(value)
	case keyPrimesHighlight:
		settings.Primes.Highlight, err = parseBool(value)
	case keyOutputPrecision:
		settings.Output.Precision, err = strconv.Atoi(value)
	case keyHistoryEnabled:
		settings.History.Enabled, err = parseBool(value)
	default:
		return fmt.Errorf("%w: unknown setting %q (known: %s)",
			domain.ErrInvalidInput, key, strings.Join(settingKeys, ", "))
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	logger.Debug("Setting %s = %s", key, value)
	return s.Save(settings)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Watch signals whenever the persisted settings change. It returns a nil
// channel when the config store cannot be watched.
func (s *SettingsService) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, ok := s.configStore.(driven.ConfigWatcher)
	if !ok {
		return nil, nil
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("watch settings: %w", err)
	}
	return changes, nil
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// parseBool accepts on/off and yes/no alongside strconv's forms.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	return strconv.ParseBool(value)
}
