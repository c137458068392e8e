// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fraction/internal/core/domain"
)

// MaxEntries is the number of evaluations kept on screen.
const MaxEntries = 50

// Entry is one evaluated input. Err is set when evaluation failed.
type Entry struct {
	Input  string
	Result domain.Result
	Err    error
}

// ResultList displays evaluations newest first.
type ResultList struct {
	entries   []Entry
	selected  int
	precision int
	styles    *styles.Styles
	width     int
	height    int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		precision: domain.DefaultAppSettings().Output.Precision,
		styles:    s,
		width:     80,
		height:    10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.entries) == 0 {
		return r.styles.Muted.Render("No results yet")
	}

	lines := make([]string, 0, len(r.entries)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.entries))), "")

	visibleCount := r.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.entries) {
		end = len(r.entries)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderEntry(i, &r.entries[i]))
	}

	return strings.Join(lines, "\n")
}

// renderEntry formats a single evaluation.
func (r *ResultList) renderEntry(index int, e *Entry) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	if e.Err != nil {
		return indicator + r.styles.Muted.Render(e.Input) + "  " + r.styles.Error.Render(e.Err.Error())
	}

	left := indicator + r.styles.Normal.Render(e.Result.Expression.String()+" = ")
	if index == r.selected {
		left = r.styles.Selected.Render(indicator+e.Result.Expression.String()) + r.styles.Normal.Render(" = ")
	}

	line := left + r.styles.Result.Render(e.Result.String())
	if e.Result.Expression.Op.IsArithmetic() {
		line += r.styles.Muted.Render("  ≈ " + e.Result.Value.FormatDecimal(r.precision))
	}
	return line
}

// Add prepends an entry and selects it. The oldest entry is dropped once
// MaxEntries is exceeded.
func (r *ResultList) Add(e Entry) {
	r.entries = append([]Entry{e}, r.entries...)
	if len(r.entries) > MaxEntries {
		r.entries = r.entries[:MaxEntries]
	}
	r.selected = 0
}

// Entries returns the current entries, newest first.
func (r *ResultList) Entries() []Entry {
	return r.entries
}

// Selected returns the index of the selected entry.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedEntry returns the selected entry, or nil if none.
func (r *ResultList) SelectedEntry() *Entry {
	if r.selected < 0 || r.selected >= len(r.entries) {
		return nil
	}
	return &r.entries[r.selected]
}

// MoveUp moves selection to a newer entry.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection to an older entry.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.entries)-1 {
		r.selected++
	}
}

// SetPrecision sets the decimal places used for approximations.
func (r *ResultList) SetPrecision(precision int) {
	if precision >= 0 && precision <= domain.MaxPrecision {
		r.precision = precision
	}
}

// Precision returns the decimal places used for approximations.
func (r *ResultList) Precision() int {
	return r.precision
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of entries.
func (r *ResultList) Count() int {
	return len(r.entries)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.entries) == 0
}
