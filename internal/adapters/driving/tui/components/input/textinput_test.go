package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/styles"
)

func TestNewExpressionInput(t *testing.T) {
	input := NewExpressionInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
}

func TestNewExpressionInput_NilStyles(t *testing.T) {
	input := NewExpressionInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestExpressionInput_Init(t *testing.T) {
	input := NewExpressionInput(nil)

	assert.NotNil(t, input.Init())
}

func TestExpressionInput_Update(t *testing.T) {
	input := NewExpressionInput(nil)

	for _, r := range "2/3" {
		updated, _ := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		assert.Equal(t, input, updated)
	}

	assert.Equal(t, "2/3", input.Value())
}

func TestExpressionInput_View(t *testing.T) {
	input := NewExpressionInput(nil)

	assert.Contains(t, input.View(), "Expression")
}

func TestExpressionInput_SetValueAndReset(t *testing.T) {
	input := NewExpressionInput(nil)

	input.SetValue("1/2 * 1/3")
	assert.Equal(t, "1/2 * 1/3", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestExpressionInput_SetWidth(t *testing.T) {
	input := NewExpressionInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 80, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}
