// SPDX-License-Identifier: MIT

package rational

import (
	"math/big"
	"regexp"
	"strings"
)

const (
	methodParse = "Parse"
	fracSep     = "/"
)

// numberPattern matches one side of a fraction: optional sign, then an
// integer or a decimal literal ("3", "-2.5", "+.5", "4.").
// Capture groups: 1 sign, 2 integer digits, 3 fraction digits (either form).
var numberPattern = regexp.MustCompile(`^([+-]?)(?:(\d+)(?:\.(\d*))?|\.(\d+))$`)

// Parse converts player text into an exact Rational.
//
// Accepted shapes (whitespace around the value and around each side of the
// slash is ignored):
//
//	"7"  "-3"  "+2"  "0.25"  "-.5"  "1/2"  "-3/4"  "1.5/3"  "3/-6"
//
// Errors:
//   - ErrMalformed for any other shape (empty, letters, two slashes, ...).
//   - ErrDivisionByZero when the denominator parses to zero ("3/0", "1/0.0").
//
// Decimals are converted exactly (0.1 == 1/10), never through float64.
func Parse(text string) (Rational, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Rational{}, rationalErrorf(methodParse, text, ErrMalformed)
	}

	parts := strings.Split(s, fracSep)
	switch len(parts) {
	case 1:
		v, ok := parseNumber(parts[0])
		if !ok {
			return Rational{}, rationalErrorf(methodParse, text, ErrMalformed)
		}

		return wrap(v), nil
	case 2:
		num, ok := parseNumber(strings.TrimSpace(parts[0]))
		if !ok {
			return Rational{}, rationalErrorf(methodParse, text, ErrMalformed)
		}
		den, ok := parseNumber(strings.TrimSpace(parts[1]))
		if !ok {
			return Rational{}, rationalErrorf(methodParse, text, ErrMalformed)
		}
		if den.Sign() == 0 {
			return Rational{}, rationalErrorf(methodParse, text, ErrDivisionByZero)
		}

		return wrap(num.Quo(num, den)), nil
	default:
		return Rational{}, rationalErrorf(methodParse, text, ErrMalformed)
	}
}

// MustParse is like Parse but panics on error. For literals only.
func MustParse(text string) Rational {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return r
}

// parseNumber turns a signed integer or decimal literal into an exact *big.Rat.
// Digits are read base 10 only; "010" is ten, not an octal literal.
func parseNumber(s string) (*big.Rat, bool) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	sign, intPart, fracPart := m[1], m[2], m[3]
	if intPart == "" {
		fracPart = m[4] // ".5" form
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false
	}
	if sign == "-" {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)

	return new(big.Rat).SetFrac(num, den), true
}
