package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

func TestServer_handleEvaluate(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	t.Run("arithmetic returns reduced fraction", func(t *testing.T) {
		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "2/3 + 3/4"})

		require.NoError(t, err)
		assert.Equal(t, "2/3 + 3/4", output.Expression)
		assert.Equal(t, "17/12", output.Result)
		require.NotNil(t, output.Numerator)
		require.NotNil(t, output.Denominator)
		require.NotNil(t, output.Decimal)
		assert.Equal(t, int64(17), *output.Numerator)
		assert.Equal(t, int64(12), *output.Denominator)
		assert.InDelta(t, 1.4167, *output.Decimal, 0.0001)
		assert.Nil(t, output.Comparison)
		assert.Nil(t, output.Equal)
	})

	t.Run("zero result keeps numerator and decimal", func(t *testing.T) {
		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "1/2 - 1/2"})

		require.NoError(t, err)
		assert.Equal(t, "0/1", output.Result)

		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"expression":"1/2 - 1/2","result":"0/1","numerator":0,"denominator":1,"decimal":0}`,
			string(data))
	})

	t.Run("compare sets comparison", func(t *testing.T) {
		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "2/3 cmp 3/4"})

		require.NoError(t, err)
		require.NotNil(t, output.Comparison)
		assert.Equal(t, -1, *output.Comparison)
		assert.Equal(t, "-1", output.Result)
	})

	t.Run("equals sets equal", func(t *testing.T) {
		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "4/8 == 1/2"})

		require.NoError(t, err)
		require.NotNil(t, output.Equal)
		assert.True(t, *output.Equal)
		assert.Nil(t, output.Numerator)
		assert.Nil(t, output.Decimal)
	})

	t.Run("division by zero is an error", func(t *testing.T) {
		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "1/2 / 0"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDivisionByZero)
	})

	t.Run("malformed expression is an error", func(t *testing.T) {
		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "2/3+3/4"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleIsPrime(t *testing.T) {
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	tests := map[int]bool{-7: false, 0: false, 1: false, 2: true, 9: false, 97: true}
	for n, expected := range tests {
		_, output, err := server.handleIsPrime(context.Background(), nil, IsPrimeInput{N: n})
		require.NoError(t, err)
		assert.Equal(t, n, output.N)
		assert.Equal(t, expected, output.Prime, "n=%d", n)
	}
}

func TestServer_handleIsPrime_RejectsLargeInput(t *testing.T) {
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	_, _, err = server.handleIsPrime(context.Background(), nil, IsPrimeInput{N: 3037000493 * 3037000493})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, output, err := server.handleIsPrime(context.Background(), nil, IsPrimeInput{N: domain.MaxPrimeCandidate})
	require.NoError(t, err)
	assert.False(t, output.Prime)
}

func TestServer_handlePrimes(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)

	t.Run("explicit limit", func(t *testing.T) {
		_, output, err := server.handlePrimes(ctx, nil, PrimesInput{Limit: 20})

		require.NoError(t, err)
		assert.Equal(t, 20, output.Limit)
		assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19}, output.Primes)
		assert.Equal(t, 8, output.Count)
	})

	t.Run("default limit from settings", func(t *testing.T) {
		_, output, err := server.handlePrimes(ctx, nil, PrimesInput{})

		require.NoError(t, err)
		assert.Equal(t, 50, output.Limit)
		assert.Equal(t, 15, output.Count)
		assert.Equal(t, 47, output.Primes[len(output.Primes)-1])
	})

	t.Run("limit above maximum is rejected", func(t *testing.T) {
		_, _, err := server.handlePrimes(ctx, nil, PrimesInput{Limit: domain.MaxPrimeLimit + 1})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
