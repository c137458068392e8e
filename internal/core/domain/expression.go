package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation identifies a binary operation on two fractions.
type Operation string

// Available operations.
const (
	// OpAdd is a + b.
	OpAdd Operation = "add"

	// OpSubtract is a - b.
	OpSubtract Operation = "subtract"

	// OpMultiply is a * b.
	OpMultiply Operation = "multiply"

	// OpDivide is a / b.
	OpDivide Operation = "divide"

	// OpCompare yields -1, 0 or 1.
	OpCompare Operation = "compare"

	// OpEquals yields true when both operands denote the same number.
	OpEquals Operation = "equals"
)

// operationAliases maps accepted spellings to operations.
var operationAliases = map[string]Operation{
	"add": OpAdd, "+": OpAdd, "plus": OpAdd,
	"subtract": OpSubtract, "sub": OpSubtract, "-": OpSubtract, "minus": OpSubtract,
	"multiply": OpMultiply, "mul": OpMultiply, "*": OpMultiply, "x": OpMultiply,
	"divide": OpDivide, "div": OpDivide, "/": OpDivide, ":": OpDivide,
	"compare": OpCompare, "cmp": OpCompare, "<=>": OpCompare,
	"equals": OpEquals, "eq": OpEquals, "==": OpEquals,
}

// ParseOperation resolves an operation name, short name or symbol.
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, s)
	}
	return op, nil
}

// IsValid returns true if the operation is recognised.
func (o Operation) IsValid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpCompare, OpEquals:
		return true
	default:
		return false
	}
}

// IsArithmetic returns true if the operation produces a fraction.
func (o Operation) IsArithmetic() bool {
	return o == OpAdd || o == OpSubtract || o == OpMultiply || o == OpDivide
}

// Symbol returns the infix symbol used when rendering expressions.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpCompare:
		return "<=>"
	case OpEquals:
		return "=="
	default:
		return "?"
	}
}

// String returns the string representation.
func (o Operation) String() string {
	return string(o)
}

// ParseRational parses "n/d" or a bare integer "n".
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty fraction", ErrInvalidInput)
	}

	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: numerator of %q: %v", ErrInvalidInput, s, err)
	}
	if !hasDen {
		return Integer(num), nil
	}

	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: denominator of %q: %v", ErrInvalidInput, s, err)
	}

	return NewRational(num, den)
}

// Expression is a binary calculation on two fractions.
type Expression struct {
	Left  Rational
	Op    Operation
	Right Rational
}

// ParseExpression parses "<left> <op> <right>". Tokens must be separated by
// whitespace so that signs and fraction bars stay unambiguous.
func ParseExpression(s string) (Expression, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Expression{}, fmt.Errorf("%w: expected \"<a> <op> <b>\", got %q", ErrInvalidInput, s)
	}

	left, err := ParseRational(fields[0])
	if err != nil {
		return Expression{}, err
	}
	op, err := ParseOperation(fields[1])
	if err != nil {
		return Expression{}, err
	}
	right, err := ParseRational(fields[2])
	if err != nil {
		return Expression{}, err
	}

	return Expression{Left: left, Op: op, Right: right}, nil
}

// String renders the expression in infix form.
func (e Expression) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Op.Symbol(), e.Right)
}

// Result is the outcome of evaluating an Expression. Exactly one of Value,
// Comparison or Equal is meaningful, selected by Expression.Op.
type Result struct {
	Expression Expression
	Value      Rational
	Comparison int
	Equal      bool
}

// String renders the meaningful part of the result.
func (r Result) String() string {
	switch r.Expression.Op {
	case OpCompare:
		return strconv.Itoa(r.Comparison)
	case OpEquals:
		return strconv.FormatBool(r.Equal)
	default:
		return r.Value.String()
	}
}

// Evaluate applies the expression's operation to its operands.
func Evaluate(e Expression) (Result, error) {
	res := Result{Expression: e}

	var err error
	switch e.Op {
	case OpAdd:
		res.Value, err = Add(e.Left, e.Right)
	case OpSubtract:
		res.Value, err = Subtract(e.Left, e.Right)
	case OpMultiply:
		res.Value, err = Multiply(e.Left, e.Right)
	case OpDivide:
		res.Value, err = Divide(e.Left, e.Right)
	case OpCompare:
		res.Comparison = Compare(e.Left, e.Right)
	case OpEquals:
		res.Equal = Equals(e.Left, e.Right)
	default:
		return Result{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, e.Op)
	}
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
