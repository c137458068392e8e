// Package cli provides the cobra command tree for the fraction binary.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fraction/internal/core/ports/driving"
	"github.com/custodia-labs/fraction/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services injected by the composition root.
var (
	calculatorService driving.CalculatorService
	primeService      driving.PrimeService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
)

// Services aggregates the driving ports used by the commands.
type Services struct {
	Calculator driving.CalculatorService
	Primes     driving.PrimeService
	History    driving.HistoryService
	Settings   driving.SettingsService
}

var rootCmd = &cobra.Command{
	Use:   "fraction",
	Short: "Exact fraction arithmetic and a prime printer",
	Long: `fraction performs exact arithmetic on rational numbers.

Every fraction is kept in lowest terms with a positive denominator,
so 4/8 is shown as 1/2 and -2/-4 as 1/2.

Examples:
  fraction add 2/3 3/4        # 17/12
  fraction eval "2/3 / 3/4"   # 8/9
  fraction primes --limit 50`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", colorAuto, "colour output: auto, always or never")
}

// Configure injects the services used by the commands.
func Configure(s *Services) {
	if s == nil {
		s = &Services{}
	}
	calculatorService = s.Calculator
	primeService = s.Primes
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
