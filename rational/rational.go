// SPDX-License-Identifier: MIT

// Package rational - the Rational value type and its arithmetic.
//
// Purpose:
//   - Keep every matrix entry exact so zero/one/equality tests need no epsilon.
//   - Preserve value semantics: a Rational is never mutated after creation.
//
// Representation:
//   - A nil *big.Rat stands for zero, so the zero value Rational{} is 0/1.
//   - big.Rat keeps lowest terms and a positive denominator after every
//     operation; we never hand the pointer out, so sharing it is safe.

package rational

import (
	"fmt"
	"math/big"
)

const (
	methodNew     = "New"
	methodDiv     = "Div"
	methodInverse = "Inverse"
)

// Rational is an exact fraction num/den with den > 0 and gcd(|num|, den) == 1.
// The zero value is 0/1 and ready to use.
type Rational struct {
	v *big.Rat // nil means zero; treated as read-only once assigned
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Rational{}

// New returns num/den in lowest terms with a positive denominator.
// Returns ErrDivisionByZero when den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%s(%d/%d): %w", methodNew, num, den, ErrDivisionByZero)
	}

	return wrap(big.NewRat(num, den)), nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in code and tests only.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return wrap(new(big.Rat).SetInt64(n))
}

// FromBig returns num/den built from arbitrary-precision integers.
// The arguments are copied; ErrDivisionByZero when den is zero.
func FromBig(num, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%s(%v/%v): %w", methodNew, num, den, ErrDivisionByZero)
	}
	if num == nil {
		return Rational{}, nil
	}

	return wrap(new(big.Rat).SetFrac(num, den)), nil
}

// Zero returns 0/1.
func Zero() Rational { return Rational{} }

// One returns 1/1.
func One() Rational { return FromInt(1) }

// wrap normalizes the zero representation so that nil is the only zero.
func wrap(x *big.Rat) Rational {
	if x.Sign() == 0 {
		return Rational{}
	}

	return Rational{v: x}
}

// rat exposes the value as a *big.Rat for read-only use inside the package.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// Num returns a copy of the numerator (sign carrier).
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Den returns a copy of the denominator (always > 0).
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return wrap(new(big.Rat).Add(r.rat(), o.rat()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return wrap(new(big.Rat).Sub(r.rat(), o.rat()))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return wrap(new(big.Rat).Mul(r.rat(), o.rat()))
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("%s(%s/%s): %w", methodDiv, r, o, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Quo(r.rat(), o.rat())), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return wrap(new(big.Rat).Neg(r.rat()))
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return wrap(new(big.Rat).Abs(r.rat()))
}

// Inverse returns 1/r, or ErrDivisionByZero when r is zero.
func (r Rational) Inverse() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("%s(0): %w", methodInverse, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Inv(r.rat())), nil
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	if r.v == nil {
		return 0
	}

	return r.v.Sign()
}

// Cmp compares r and o: -1 if r < o, 0 if equal, +1 if r > o.
func (r Rational) Cmp(o Rational) int {
	return r.rat().Cmp(o.rat())
}

// Equal reports exact equality.
func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

// IsZero reports r == 0.
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsOne reports r == 1.
func (r Rational) IsOne() bool {
	return r.v != nil && r.v.IsInt() && r.v.Num().IsInt64() && r.v.Num().Int64() == 1
}

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool {
	return r.rat().IsInt()
}

// Float64 returns the nearest float64. Display only; never feed it back.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()

	return f
}

// RatString returns the exact form: "n" for integers, "n/d" otherwise.
func (r Rational) RatString() string {
	return r.rat().RatString()
}

// String implements fmt.Stringer using the display formatter.
func (r Rational) String() string {
	return Format(r)
}
