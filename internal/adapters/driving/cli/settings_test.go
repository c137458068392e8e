package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Primes]")
	assert.Contains(t, out, "Limit: 50")
	assert.Contains(t, out, "Highlight: yes")
	assert.Contains(t, out, "Precision: 2")
	assert.Contains(t, out, "[History]")
	assert.Contains(t, out, "Enabled: yes")
}

func TestSettingsSetCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := executeCommand(t, "settings", "set", "primes.limit", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Set primes.limit = 100")

	out, err = executeCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Limit: 100")
	assert.Positive(t, env.config.Saves())
}

func TestSettingsSetCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"settings", "set", "colour.theme", "dark"}},
		{"not a number", []string{"settings", "set", "output.precision", "many"}},
		{"out of range", []string{"settings", "set", "output.precision", "99"}},
		{"bad bool", []string{"settings", "set", "history.enabled", "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			_, err := executeCommand(t, tt.args...)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsSetCmd_RequiresKeyAndValue(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "set", "primes.limit")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsResetCmd(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.settings.Set("primes.limit", "10"))

	out, err := executeCommand(t, "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "restored to defaults")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 50, settings.Primes.Limit)
}

func TestSettingsCmd_DisableHistory(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "set", "history.enabled", "no")
	require.NoError(t, err)
	_, err = executeCommand(t, "add", "1", "2")
	require.NoError(t, err)

	out, err := executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No calculations recorded")
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	Configure(nil)

	_, err := executeCommand(t, "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
