// SPDX-License-Identifier: MIT
// Package: rational
//
// errors.go - sentinel errors for the rational package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Call sites add context with %w (see rationalErrorf).
//   - No function panics on user input; MustNew is the single, documented
//     exception meant for literals in code and tests.

package rational

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a denominator (constructed, parsed or
// produced by Div/Inverse) is zero.
var ErrDivisionByZero = errors.New("rational: division by zero")

// ErrMalformed is returned by Parse when the text is not a signed integer,
// a decimal literal or a "numerator/denominator" pair of those.
var ErrMalformed = errors.New("rational: malformed number")

// rationalErrorf attaches method context and the offending input to a sentinel.
func rationalErrorf(method, input string, err error) error {
	return fmt.Errorf("%s(%q): %w", method, input, err)
}
