package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fraction/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/services"
)

func newTestPorts() *Ports {
	settings := services.NewSettingsService(memory.NewConfigStore())
	return &Ports{
		Calculator: services.NewCalculatorService(memory.NewHistoryStore(), settings),
		Settings:   settings,
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return app
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// submit presses enter and feeds the resulting message back into the app.
func submit(t *testing.T, app *App) {
	t.Helper()
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingCalculatorService)
	assert.Nil(t, app)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var p *Ports

	assert.ErrorIs(t, p.Validate(), ErrMissingCalculatorService)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, app, app.WithContext(context.Background()))
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_View_BeforeReady(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, app.View(), "Expression")
}

func TestApp_EvaluateExpression(t *testing.T) {
	app := newTestApp(t)

	typeText(app, "2/3 + 3/4")
	assert.Equal(t, "2/3 + 3/4", app.Input())
	submit(t, app)

	require.Len(t, app.Results(), 1)
	assert.Equal(t, "17/12", app.Results()[0].Result.String())
	assert.Empty(t, app.Input())
	assert.NoError(t, app.Err())

	view := app.View()
	assert.Contains(t, view, "17/12")
	assert.Contains(t, view, "1.42")
	assert.Contains(t, view, "1 evaluated")
}

func TestApp_EvaluateError(t *testing.T) {
	app := newTestApp(t)

	typeText(app, "1/2 / 0")
	submit(t, app)

	require.Error(t, app.Err())
	assert.ErrorIs(t, app.Err(), domain.ErrDivisionByZero)
	assert.Equal(t, "1/2 / 0", app.Input(), "input kept for correction")
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_EnterOnEmptyInput(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, app.Results())
}

func TestApp_EscClears(t *testing.T) {
	app := newTestApp(t)
	typeText(app, "1 / 0")
	submit(t, app)
	require.Error(t, app.Err())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, app.Input())
	assert.NoError(t, app.Err())
	assert.NotContains(t, app.View(), "Error:")
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, app.ShowingHelp())
	assert.Empty(t, app.Input())
	assert.Contains(t, app.View(), "Operators")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, app.ShowingHelp())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QIsTyped(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Equal(t, "q", app.Input())
}

func TestApp_RecallSelectedEntry(t *testing.T) {
	app := newTestApp(t)
	typeText(app, "1 + 1")
	submit(t, app)
	typeText(app, "2 * 3")
	submit(t, app)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "1 + 1", app.Input())
}

func TestApp_SettingsLoaded(t *testing.T) {
	app := newTestApp(t)

	settings := domain.DefaultAppSettings()
	settings.Output.Precision = 5
	app.Update(messages.SettingsLoaded{Settings: &settings})
	assert.Equal(t, 5, app.Precision())

	app.Update(messages.SettingsLoaded{Err: errors.New("unreadable")})
	assert.Equal(t, 5, app.Precision())
}

func TestApp_LoadSettingsCommand(t *testing.T) {
	ports := newTestPorts()
	require.NoError(t, ports.Settings.Set("output.precision", "4"))
	app, err := NewApp(ports)
	require.NoError(t, err)

	msg := app.loadSettings()()
	app.Update(msg)

	assert.Equal(t, 4, app.Precision())
}

func TestApp_LoadSettingsWithoutService(t *testing.T) {
	app, err := NewApp(&Ports{Calculator: services.NewCalculatorService(nil, nil)})
	require.NoError(t, err)

	assert.Nil(t, app.loadSettings())
}

func TestApp_SettingsChanged(t *testing.T) {
	ports := newTestPorts()
	changes := make(chan struct{}, 1)
	ports.SettingsChanges = changes
	app, err := NewApp(ports)
	require.NoError(t, err)

	wait := app.waitForSettings()
	require.NotNil(t, wait)

	require.NoError(t, ports.Settings.Set("output.precision", "3"))
	changes <- struct{}{}
	msg := wait()
	assert.Equal(t, messages.SettingsChanged{}, msg)

	_, cmd := app.Update(msg)
	require.NotNil(t, cmd)
	app.Update(app.loadSettings()())
	assert.Equal(t, 3, app.Precision())
}

func TestApp_WaitForSettings_Closed(t *testing.T) {
	ports := newTestPorts()
	changes := make(chan struct{})
	close(changes)
	ports.SettingsChanges = changes
	app, err := NewApp(ports)
	require.NoError(t, err)

	assert.Nil(t, app.waitForSettings()())
}

func TestApp_WaitForSettings_NotWatched(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Nil(t, app.waitForSettings())
}
