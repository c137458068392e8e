package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fraction/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fraction/internal/core/services"
	"github.com/custodia-labs/fraction/internal/logger"
)

// testEnv exposes the stores behind the services configured for a test.
type testEnv struct {
	history  *memory.HistoryStore
	config   *memory.ConfigStore
	settings *services.SettingsService
}

// setupTestServices wires real services over in-memory stores and returns
// a cleanup that restores package state between tests.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		history: memory.NewHistoryStore(),
		config:  memory.NewConfigStore(),
	}
	env.settings = services.NewSettingsService(env.config)

	Configure(&Services{
		Calculator: services.NewCalculatorService(env.history, env.settings),
		Primes:     services.NewPrimeService(env.settings),
		History:    services.NewHistoryService(env.history),
		Settings:   env.settings,
	})

	t.Cleanup(func() {
		Configure(nil)
		resetFlags()
	})
	return env
}

// resetFlags restores flag variables, which cobra keeps between executions.
func resetFlags() {
	verbose = false
	colorMode = colorAuto
	calcDecimal = false
	calcJSON = false
	primesLimit = 0
	primesNoColor = false
	primesOnly = false
	historyLimit = 20
	historyYes = false
	logger.SetVerbose(false)
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "fraction", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "lowest terms")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)

	c := rootCmd.PersistentFlags().Lookup("color")
	require.NotNil(t, c)
	assert.Equal(t, colorAuto, c.DefValue)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"version", "add", "sub", "mul", "div", "cmp", "eq", "eval",
		"primes", "demo", "history", "settings", "tui", "mcp",
	} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestConfigure_Nil(t *testing.T) {
	setupTestServices(t)

	Configure(nil)

	assert.Nil(t, calculatorService)
	assert.Nil(t, primeService)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestRootCmd_VerboseEnablesLogger(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}
