package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui"
	"github.com/custodia-labs/fraction/internal/logger"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("the interactive calculator needs a terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Long: `Launch an interactive fraction calculator in the terminal.

Type an expression such as 2/3 + 3/4 and press Enter. Results stay
listed with their decimal approximation.

Controls:
  Enter   - Evaluate
  Esc     - Clear input
  ↑/↓     - Select a previous result
  Tab     - Copy the selected expression into the input
  ?       - Toggle help
  Ctrl+C  - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}

	ports := &tui.Ports{
		Calculator: calculatorService,
		Settings:   settingsService,
	}
	if settingsService != nil {
		changes, err := settingsService.Watch(cmd.Context())
		if err != nil {
			logger.Warn("Settings will not reload: %v", err)
		}
		ports.SettingsChanges = changes
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
