package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

var (
	calcDecimal bool
	calcJSON    bool
)

// calcOutput is the JSON form of a calculation result.
type calcOutput struct {
	Expression  string   `json:"expression"`
	Result      string   `json:"result"`
	Numerator   *int64   `json:"numerator,omitempty"`
	Denominator *int64   `json:"denominator,omitempty"`
	Decimal     *float64 `json:"decimal,omitempty"`
	Comparison  *int     `json:"comparison,omitempty"`
	Equal       *bool    `json:"equal,omitempty"`
}

var evalCmd = &cobra.Command{
	Use:   "eval <a> <op> <b>",
	Short: "Evaluate a fraction expression",
	Long: `Evaluate a binary expression on two fractions.

Operands are written n/d or n. The operator must be separated from the
operands by spaces.

Operators:
  +  plus                 addition
  -  minus sub            subtraction
  *  x mul                multiplication
  /  : div                division
  cmp <=>                 comparison (-1, 0 or 1)
  == eq                   equality

Examples:
  fraction eval "2/3 + 3/4"     # 17/12
  fraction eval 2/3 / 3/4       # 8/9
  fraction eval -- -1/2 cmp 1/3 # -1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

// newOperationCmd builds a command that applies op to two operands.
func newOperationCmd(use, short string, op domain.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Long: fmt.Sprintf(`%s.

Operands are written n/d or n. Negative operands must follow "--":
  fraction %s -- -1/2 3/4`, short, use),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op, args[0], args[1])
		},
	}
}

var operationCmds = []*cobra.Command{
	newOperationCmd("add", "Add two fractions", domain.OpAdd),
	newOperationCmd("sub", "Subtract the second fraction from the first", domain.OpSubtract),
	newOperationCmd("mul", "Multiply two fractions", domain.OpMultiply),
	newOperationCmd("div", "Divide the first fraction by the second", domain.OpDivide),
	newOperationCmd("cmp", "Compare two fractions (-1, 0 or 1)", domain.OpCompare),
	newOperationCmd("eq", "Report whether two fractions are equal", domain.OpEquals),
}

func init() {
	for _, c := range append([]*cobra.Command{evalCmd}, operationCmds...) {
		c.Flags().BoolVarP(&calcDecimal, "decimal", "d", false, "also print the decimal approximation")
		c.Flags().BoolVar(&calcJSON, "json", false, "print the result as JSON")
		rootCmd.AddCommand(c)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	res, err := calculatorService.Evaluate(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func runOperation(cmd *cobra.Command, op domain.Operation, left, right string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	a, err := domain.ParseRational(left)
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	b, err := domain.ParseRational(right)
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}

	res, err := calculatorService.Apply(cmd.Context(), op, a, b)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func printResult(cmd *cobra.Command, res domain.Result) error {
	if calcJSON {
		return printResultJSON(cmd, res)
	}

	line := res.String()
	if calcDecimal && res.Expression.Op.IsArithmetic() {
		line += " ≈ " + res.Value.FormatDecimal(outputPrecision())
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func printResultJSON(cmd *cobra.Command, res domain.Result) error {
	out := calcOutput{
		Expression: res.Expression.String(),
		Result:     res.String(),
	}

	switch res.Expression.Op {
	case domain.OpCompare:
		out.Comparison = &res.Comparison
	case domain.OpEquals:
		out.Equal = &res.Equal
	default:
		num, den, dec := res.Value.Num(), res.Value.Den(), res.Value.Float64()
		out.Numerator = &num
		out.Denominator = &den
		out.Decimal = &dec
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// outputPrecision returns the configured decimal places.
func outputPrecision() int {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Output.Precision
		}
	}
	return domain.DefaultAppSettings().Output.Precision
}
