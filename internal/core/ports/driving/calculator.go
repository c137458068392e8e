package driving

import (
	"context"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

// CalculatorService evaluates fraction arithmetic.
type CalculatorService interface {
	// Evaluate parses and evaluates an expression such as "2/3 + 3/4".
	Evaluate(ctx context.Context, expression string) (domain.Result, error)

	// Apply evaluates op on two already-parsed operands.
	Apply(ctx context.Context, op domain.Operation, a, b domain.Rational) (domain.Result, error)
}
