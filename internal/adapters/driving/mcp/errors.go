// Package mcp provides an MCP (Model Context Protocol) server adapter for fraction.
// It lets AI assistants evaluate fraction expressions and query primes.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")

// ErrMissingPrimeService is returned when the prime service is not provided.
var ErrMissingPrimeService = errors.New("mcp: prime service is required")
