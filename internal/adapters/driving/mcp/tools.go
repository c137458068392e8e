package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Expression string `json:"expression" jsonschema:"a whitespace separated expression such as 2/3 + 3/4"`
}

// EvaluateOutput is the output schema for the evaluate tool.
// Numerator, Denominator and Decimal are set for arithmetic, Comparison for
// compare operations and Equal for equality checks.
type EvaluateOutput struct {
	Expression  string   `json:"expression"`
	Result      string   `json:"result"`
	Numerator   *int64   `json:"numerator,omitempty"`
	Denominator *int64   `json:"denominator,omitempty"`
	Decimal     *float64 `json:"decimal,omitempty"`
	Comparison  *int     `json:"comparison,omitempty"`
	Equal       *bool    `json:"equal,omitempty"`
}

// IsPrimeInput is the input schema for the is_prime tool.
type IsPrimeInput struct {
	N int `json:"n" jsonschema:"the integer to test, at most 1000000000000"`
}

// IsPrimeOutput is the output schema for the is_prime tool.
type IsPrimeOutput struct {
	N     int  `json:"n"`
	Prime bool `json:"prime"`
}

// PrimesInput is the input schema for the primes tool.
type PrimesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"upper bound of the range 1..limit (default from settings)"`
}

// PrimesOutput is the output schema for the primes tool.
type PrimesOutput struct {
	Limit  int   `json:"limit"`
	Primes []int `json:"primes"`
	Count  int   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate an exact fraction expression (+ - * / <=> ==) and return the reduced result",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "is_prime",
		Description: "Report whether an integer (at most 10^12) is prime",
	}, s.handleIsPrime)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "primes",
		Description: "List the primes between 1 and limit",
	}, s.handlePrimes)
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	res, err := s.ports.Calculator.Evaluate(ctx, input.Expression)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	return nil, newEvaluateOutput(res), nil
}

func newEvaluateOutput(res domain.Result) EvaluateOutput {
	out := EvaluateOutput{
		Expression: res.Expression.String(),
		Result:     res.String(),
	}

	switch res.Expression.Op {
	case domain.OpCompare:
		cmp := res.Comparison
		out.Comparison = &cmp
	case domain.OpEquals:
		eq := res.Equal
		out.Equal = &eq
	default:
		num, den, dec := res.Value.Num(), res.Value.Den(), res.Value.Float64()
		out.Numerator = &num
		out.Denominator = &den
		out.Decimal = &dec
	}

	return out
}

// handleIsPrime handles the is_prime tool invocation.
func (s *Server) handleIsPrime(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input IsPrimeInput,
) (*mcp.CallToolResult, IsPrimeOutput, error) {
	if err := domain.CheckPrimeCandidate(input.N); err != nil {
		return nil, IsPrimeOutput{}, err
	}
	return nil, IsPrimeOutput{N: input.N, Prime: s.ports.Primes.IsPrime(input.N)}, nil
}

// handlePrimes handles the primes tool invocation.
func (s *Server) handlePrimes(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PrimesInput,
) (*mcp.CallToolResult, PrimesOutput, error) {
	checks, err := s.ports.Primes.Classify(input.Limit)
	if err != nil {
		return nil, PrimesOutput{}, fmt.Errorf("classifying range: %w", err)
	}

	output := PrimesOutput{
		Limit:  len(checks),
		Primes: []int{},
	}
	for _, c := range checks {
		if c.Prime {
			output.Primes = append(output.Primes, c.N)
		}
	}
	output.Count = len(output.Primes)

	return nil, output, nil
}
