package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRational(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2/3", "2/3"},
		{" 4/8 ", "1/2"},
		{"-2/-4", "1/2"},
		{"3/-9", "-1/3"},
		{"5", "5/1"},
		{"-5", "-5/1"},
		{"0/17", "0/1"},
		{"6 / 4", "3/2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRational(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r.String())
		})
	}
}

func TestParseRational_Errors(t *testing.T) {
	_, err := ParseRational("1/0")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	for _, input := range []string{"", "abc", "1/x", "1/2/3", "/2", "1.5"} {
		_, err := ParseRational(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input    string
		expected Operation
	}{
		{"+", OpAdd},
		{"add", OpAdd},
		{"-", OpSubtract},
		{"sub", OpSubtract},
		{"*", OpMultiply},
		{"MUL", OpMultiply},
		{"/", OpDivide},
		{":", OpDivide},
		{"cmp", OpCompare},
		{"<=>", OpCompare},
		{"==", OpEquals},
		{"eq", OpEquals},
	}

	for _, tt := range tests {
		op, err := ParseOperation(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, op)
		assert.True(t, op.IsValid())
	}

	_, err := ParseOperation("%")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOperation_IsArithmetic(t *testing.T) {
	assert.True(t, OpAdd.IsArithmetic())
	assert.True(t, OpDivide.IsArithmetic())
	assert.False(t, OpCompare.IsArithmetic())
	assert.False(t, OpEquals.IsArithmetic())
	assert.False(t, Operation("pow").IsValid())
	assert.Equal(t, "?", Operation("pow").Symbol())
}

func TestParseExpression(t *testing.T) {
	e, err := ParseExpression("2/3 + 3/4")
	require.NoError(t, err)

	assert.Equal(t, OpAdd, e.Op)
	assert.Equal(t, "2/3", e.Left.String())
	assert.Equal(t, "3/4", e.Right.String())
	assert.Equal(t, "2/3 + 3/4", e.String())

	e, err = ParseExpression("  -1/2   /  -3/4 ")
	require.NoError(t, err)
	assert.Equal(t, OpDivide, e.Op)
	assert.Equal(t, "-1/2 / -3/4", e.String())
}

func TestParseExpression_Errors(t *testing.T) {
	for _, input := range []string{"", "2/3", "2/3 +", "2/3+3/4", "2/3 + 3/4 + 1", "2/3 ^ 3/4", "a + 1"} {
		_, err := ParseExpression(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2/3 + 3/4", "17/12"},
		{"2/3 - 3/4", "-1/12"},
		{"2/3 * 3/4", "1/2"},
		{"2/3 / 3/4", "8/9"},
		{"2/3 cmp 3/4", "-1"},
		{"3/4 cmp 2/3", "1"},
		{"1/2 cmp 2/4", "0"},
		{"2/3 == 3/4", "false"},
		{"1/2 == 4/8", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ParseExpression(tt.input)
			require.NoError(t, err)

			res, err := Evaluate(e)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.String())
			assert.Equal(t, e, res.Expression)
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	e, err := ParseExpression("1/2 / 0")
	require.NoError(t, err)

	_, err = Evaluate(e)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluate_UnknownOperation(t *testing.T) {
	_, err := Evaluate(Expression{Left: Integer(1), Op: "pow", Right: Integer(2)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
