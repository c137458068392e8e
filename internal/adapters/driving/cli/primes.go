package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fraction/internal/core/domain"
)

var (
	primesLimit   int
	primesNoColor bool
	primesOnly    bool
)

var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "Print 1..N with primes highlighted",
	Long: `Print every integer from 1 to N on one line, highlighting the primes.

Primality is decided by trial division up to the square root. The limit
defaults to the primes.limit setting (50 unless changed).

Examples:
  fraction primes
  fraction primes --limit 100
  fraction primes --only --limit 20
  fraction primes check 7 9 97`,
	Args: cobra.NoArgs,
	RunE: runPrimes,
}

var primesCheckCmd = &cobra.Command{
	Use:   "check <n>...",
	Short: "Report whether each number is prime",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrimesCheck,
}

func init() {
	primesCmd.Flags().IntVarP(&primesLimit, "limit", "n", 0, "upper bound of the range (default from settings)")
	primesCmd.Flags().BoolVar(&primesNoColor, "no-color", false, "do not highlight primes")
	primesCmd.Flags().BoolVar(&primesOnly, "only", false, "print only the primes")
	primesCmd.AddCommand(primesCheckCmd)
	rootCmd.AddCommand(primesCmd)
}

func runPrimes(cmd *cobra.Command, _ []string) error {
	if primeService == nil {
		return errors.New("prime service not configured")
	}

	checks, err := primeService.Classify(primesLimit)
	if err != nil {
		return err
	}

	mode := colorMode
	if primesNoColor || !highlightPrimes() {
		mode = colorNever
	}
	s, err := newStyles(cmd.OutOrStdout(), mode)
	if err != nil {
		return err
	}

	return writePrimes(cmd.OutOrStdout(), s, checks, primesOnly)
}

// writePrimes prints the checks on one line, space separated, with primes
// styled by s.Prime.
func writePrimes(w io.Writer, s *styles.Styles, checks []domain.PrimeCheck, only bool) error {
	parts := make([]string, 0, len(checks))
	for _, c := range checks {
		n := strconv.Itoa(c.N)
		switch {
		case c.Prime:
			parts = append(parts, s.Prime.Render(n))
		case !only:
			parts = append(parts, s.Composite.Render(n))
		}
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func runPrimesCheck(cmd *cobra.Command, args []string) error {
	if primeService == nil {
		return errors.New("prime service not configured")
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, arg)
		}
		if err := domain.CheckPrimeCandidate(n); err != nil {
			return err
		}
		if primeService.IsPrime(n) {
			fmt.Fprintf(out, "%d is prime\n", n)
		} else {
			fmt.Fprintf(out, "%d is not prime\n", n)
		}
	}
	return nil
}

// highlightPrimes returns the primes.highlight setting.
func highlightPrimes() bool {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Primes.Highlight
		}
	}
	return domain.DefaultAppSettings().Primes.Highlight
}
