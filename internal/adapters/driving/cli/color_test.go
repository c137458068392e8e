package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseColor(t *testing.T) {
	buf := new(bytes.Buffer)

	tests := []struct {
		mode     string
		expected bool
	}{
		{colorAlways, true},
		{colorNever, false},
		{colorAuto, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := useColor(buf, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUseColor_Invalid(t *testing.T) {
	_, err := useColor(new(bytes.Buffer), "rainbow")

	assert.Error(t, err)
}

func TestUseColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got, err := useColor(os.Stdout, colorAuto)

	require.NoError(t, err)
	assert.False(t, got)
}

func TestNewStyles(t *testing.T) {
	plain, err := newStyles(new(bytes.Buffer), colorNever)
	require.NoError(t, err)
	assert.Equal(t, "7", plain.Prime.Render("7"))

	colored, err := newStyles(new(bytes.Buffer), colorAlways)
	require.NoError(t, err)
	assert.Contains(t, colored.Prime.Render("7"), "\x1b[")
}
