package domain

import "time"

// Calculation is a recorded evaluation.
type Calculation struct {
	// ID uniquely identifies the entry.
	ID string

	// Operation is the evaluated operation.
	Operation Operation

	// Left and Right are the normalised operands.
	Left  Rational
	Right Rational

	// Result is the rendered outcome (a fraction, -1/0/1, or true/false).
	Result string

	// CreatedAt is when the calculation was recorded.
	CreatedAt time.Time
}

// NewCalculation records a result under the given id.
func NewCalculation(id string, res Result, at time.Time) Calculation {
	return Calculation{
		ID:        id,
		Operation: res.Expression.Op,
		Left:      res.Expression.Left,
		Right:     res.Expression.Right,
		Result:    res.String(),
		CreatedAt: at,
	}
}

// Expression returns the infix form of the recorded calculation.
func (c Calculation) Expression() Expression {
	return Expression{Left: c.Left, Op: c.Operation, Right: c.Right}
}
