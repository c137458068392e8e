// Package domain defines the core types for fraction.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Rational: An exact fraction in lowest terms with a positive denominator
//   - Expression: A parsed "left op right" calculation
//   - Result: The outcome of evaluating an Expression
//   - Calculation: A recorded Result in the history
//   - PrimeCheck: A number paired with its primality
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
