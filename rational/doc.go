// SPDX-License-Identifier: MIT

// Package rational provides an exact fraction value type and the textual
// forms players type and read.
//
// What it offers:
//
//   - Rational: an immutable fraction kept in lowest terms with a positive
//     denominator. Zero is 0/1. Every operation returns a new value.
//   - Arithmetic closed over Rational: Add, Sub, Mul, Div, Neg, Inverse, Abs.
//   - Exact comparison: Cmp, Equal, IsZero, IsOne, IsInteger, Sign.
//   - Parse: "3", "-1/2", "0.25", " 1.5 / 3 " into a Rational.
//   - Format: integers as integer literals, fractions as "n/d" while the
//     denominator stays readable (≤ MaxDisplayDenominator), otherwise the
//     best continued-fraction convergent within that bound.
//
// Format is strictly a read-path helper: its approximation is lossy and
// must never be parsed back into stored state.
//
// Complexity: arithmetic is backed by math/big, so every operation costs
// O(d²) in the digit length d of the operands; for puzzle-sized values this
// is effectively O(1).
//
// Example:
//
//	half, _ := rational.Parse("1/2")
//	x := half.Mul(rational.FromInt(4))
//	fmt.Println(rational.Format(x)) // 2
package rational
