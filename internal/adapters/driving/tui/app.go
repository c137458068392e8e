package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fraction/internal/logger"
)

// App is the calculator TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input   *input.ExpressionInput
	results *list.ResultList
	status  *status.Bar

	// showHelp toggles the keybinding reference.
	showHelp bool

	// err holds the last evaluation error.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		input:   input.NewExpressionInput(s),
		results: list.NewResultList(s),
		status:  status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fraction"),
		a.input.Init(),
		a.loadSettings(),
		a.waitForSettings(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			logger.Warn("Failed to load settings: %v", msg.Err)
			return a, nil
		}
		a.results.SetPrecision(msg.Settings.Output.Precision)
		return a, nil

	case messages.SettingsChanged:
		return a, tea.Batch(a.loadSettings(), a.waitForSettings())

	case messages.EvaluationCompleted:
		a.handleEvaluation(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Help):
		a.showHelp = !a.showHelp
		if a.showHelp {
			a.status.SetState(status.StateHelp)
		} else {
			a.restoreStatus()
		}
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Clear):
		a.input.Reset()
		a.err = nil
		a.showHelp = false
		a.restoreStatus()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Evaluate):
		expr := strings.TrimSpace(a.input.Value())
		if expr == "" {
			return a, nil
		}
		return a, a.evaluate(expr)

	case keymap.Matches(keyStr, a.keymap.Up), keymap.Matches(keyStr, a.keymap.Down):
		var cmd tea.Cmd
		a.results, cmd = a.results.Update(msg)
		return a, cmd

	case keymap.Matches(keyStr, a.keymap.Recall):
		if e := a.results.SelectedEntry(); e != nil {
			a.input.SetValue(e.Input)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// evaluate returns a command that runs the calculation.
func (a *App) evaluate(expr string) tea.Cmd {
	ctx := a.ctx
	calc := a.ports.Calculator
	return func() tea.Msg {
		res, err := calc.Evaluate(ctx, expr)
		return messages.EvaluationCompleted{Input: expr, Result: res, Err: err}
	}
}

// loadSettings returns a command that reads settings, or nil when no
// settings service is wired.
func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	svc := a.ports.Settings
	return func() tea.Msg {
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// waitForSettings returns a command that blocks until the next settings
// change, or nil when changes are not watched.
func (a *App) waitForSettings() tea.Cmd {
	changes := a.ports.SettingsChanges
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsChanged{}
	}
}

func (a *App) handleEvaluation(msg messages.EvaluationCompleted) {
	a.results.Add(list.Entry{Input: msg.Input, Result: msg.Result, Err: msg.Err})
	a.status.SetCount(a.results.Count())

	if msg.Err != nil {
		a.err = msg.Err
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	a.input.Reset()
	a.status.SetMessage("")
	a.status.SetState(status.StateEvaluated)
}

func (a *App) restoreStatus() {
	switch {
	case a.err != nil:
		a.status.SetState(status.StateError)
	case a.results.Count() > 0:
		a.status.SetState(status.StateEvaluated)
	default:
		a.status.Clear()
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.styles.Title.Render("fraction"),
		a.input.View(),
		"",
	}

	if a.showHelp {
		sections = append(sections, a.viewHelp())
	} else {
		sections = append(sections, a.results.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	bodyHeight := lipgloss.Height(body)
	if gap := a.height - bodyHeight - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	return body + "\n" + a.status.View()
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	lines := []string{
		a.styles.Subtitle.Render("Help"),
		"",
		a.styles.Normal.Render("Type an expression with spaces around the operator, e.g. 2/3 + 3/4"),
		a.styles.Muted.Render("Operators: + - * / : cmp <=> =="),
		"",
	}
	for _, b := range a.status.Help() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-8s %s", h.Key, h.Desc))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the terminal dimensions and marks the app ready.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.input.SetWidth(width)
	// title, input box, blank line and status bar
	a.results.SetDimensions(width, height-6)
	a.status.SetWidth(width)
}

// Results returns the evaluations shown, newest first.
func (a *App) Results() []list.Entry {
	return a.results.Entries()
}

// Input returns the current input text.
func (a *App) Input() string {
	return a.input.Value()
}

// Err returns the last evaluation error.
func (a *App) Err() error {
	return a.err
}

// ShowingHelp reports whether the help view is visible.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Precision returns the decimal places used for approximations.
func (a *App) Precision() int {
	return a.results.Precision()
}
