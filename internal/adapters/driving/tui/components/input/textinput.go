// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/styles"
)

// ExpressionInput wraps a bubbles textinput for typing fraction expressions.
type ExpressionInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewExpressionInput creates a new expression input component.
func NewExpressionInput(s *styles.Styles) *ExpressionInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "2/3 + 3/4"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return &ExpressionInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Init initialises the input.
func (e *ExpressionInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (e *ExpressionInput) Update(msg tea.Msg) (*ExpressionInput, tea.Cmd) {
	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// View renders the input.
func (e *ExpressionInput) View() string {
	label := e.styles.Title.Render("Expression: ")
	field := e.styles.InputField.Render(e.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (e *ExpressionInput) Value() string {
	return e.textinput.Value()
}

// SetValue sets the input value.
func (e *ExpressionInput) SetValue(value string) {
	e.textinput.SetValue(value)
	e.textinput.CursorEnd()
}

// Focused returns whether the input is focused.
func (e *ExpressionInput) Focused() bool {
	return e.textinput.Focused()
}

// SetWidth sets the width of the input.
func (e *ExpressionInput) SetWidth(width int) {
	e.width = width
	// label and border
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	e.textinput.Width = inputWidth
}

// Width returns the current width.
func (e *ExpressionInput) Width() int {
	return e.width
}

// Reset clears the input.
func (e *ExpressionInput) Reset() {
	e.textinput.Reset()
}
