package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fraction/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")

	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresServices(t *testing.T) {
	setupTestServices(t)
	Configure(nil)

	_, err := executeCommand(t, "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingCalculatorService)
}

func TestMCPServeCmd_HasRateFlags(t *testing.T) {
	rate := mcpServeCmd.Flags().Lookup("rate")
	require.NotNil(t, rate)
	assert.Equal(t, "20", rate.DefValue)

	burst := mcpServeCmd.Flags().Lookup("burst")
	require.NotNil(t, burst)
	assert.Equal(t, "40", burst.DefValue)
}
