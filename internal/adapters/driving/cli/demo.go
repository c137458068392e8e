package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

// demoPrimeLimit is the range printed by the demo.
const demoPrimeLimit = 50

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the fraction and prime demonstration",
	Long: `Walk through every fraction operation on f1 = 2/3 and f2 = 3/4,
then print 1..50 with the primes highlighted.

The demonstration does not touch the calculation history.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if primeService == nil {
		return errors.New("prime service not configured")
	}

	s, err := newStyles(cmd.OutOrStdout(), colorMode)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	f1, err := domain.NewRational(2, 3)
	if err != nil {
		return err
	}
	f2, err := domain.NewRational(3, 4)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, s.Title.Render("=== Fractions ==="))
	fmt.Fprintf(out, "f1 = %s\n", f1)
	fmt.Fprintf(out, "f2 = %s\n", f2)

	ops := []struct {
		label string
		fn    func(a, b domain.Rational) (domain.Rational, error)
	}{
		{"f1 + f2", domain.Add},
		{"f1 - f2", domain.Subtract},
		{"f1 * f2", domain.Multiply},
		{"f1 / f2", domain.Divide},
	}
	for _, op := range ops {
		v, err := op.fn(f1, f2)
		if err != nil {
			return fmt.Errorf("%s: %w", op.label, err)
		}
		fmt.Fprintf(out, "%s = %s\n", op.label, s.Result.Render(v.String()))
	}

	fmt.Fprintf(out, "f1 == f2 ? %t\n", domain.Equals(f1, f2))
	fmt.Fprintf(out, "Compare(f1, f2) = %d\n", domain.Compare(f1, f2))
	fmt.Fprintf(out, "f1 as decimal = %s\n", f1.FormatDecimal(2))

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Title.Render("=== Primes ==="))

	checks, err := primeService.Classify(demoPrimeLimit)
	if err != nil {
		return err
	}
	return writePrimes(out, s, checks, false)
}
