// SPDX-License-Identifier: MIT

// Package rational - display formatting.
//
// Format is the read path only. When a denominator grows past
// MaxDisplayDenominator (long chains of exotic factors), the value shown is
// the last continued-fraction convergent whose denominator still fits.
// The stored Rational is never touched.

package rational

import (
	"math/big"
)

const (
	// MaxDisplayDenominator is the largest denominator Format renders verbatim.
	MaxDisplayDenominator = 100

	// MaxExpansionSteps caps the continued-fraction expansion in Approximate.
	MaxExpansionSteps = 100

	// fallbackDecimals is the precision of the last-resort decimal rendering.
	fallbackDecimals = 2
)

// Format renders v for players.
//
//   - integers: "3", "-7", "0"
//   - den ≤ MaxDisplayDenominator: "n/d" ("-1/2", "7/100")
//   - otherwise: the bounded approximation from Approximate, as "n/d" or "n";
//     a 2-decimal string if no convergent is found within MaxExpansionSteps.
func Format(v Rational) string {
	r := v.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	limit := big.NewInt(MaxDisplayDenominator)
	if r.Denom().Cmp(limit) <= 0 {
		return r.RatString()
	}

	num, den, ok := Approximate(v, MaxDisplayDenominator)
	if !ok {
		return r.FloatString(fallbackDecimals)
	}
	approx, err := FromBig(num, den)
	if err != nil {
		return r.FloatString(fallbackDecimals)
	}

	return approx.RatString()
}

// Approximate returns the last convergent h/k of the continued-fraction
// expansion of v with k ≤ maxDen. The sign of v is carried by h.
//
// Implementation:
//   - Stage 1: expand |v| = p/q exactly with integer division (no floats).
//   - Stage 2: track convergents h(n) = a(n)*h(n-1) + h(n-2), same for k.
//   - Stage 3: stop when k would exceed maxDen (return the previous
//     convergent) or the expansion terminates (return the exact value).
//
// Returns ok=false only if MaxExpansionSteps pass without either stop
// condition, or when maxDen < 1.
//
// Complexity: O(MaxExpansionSteps) big-integer steps.
func Approximate(v Rational, maxDen int64) (num, den *big.Int, ok bool) {
	if maxDen < 1 {
		return nil, nil, false
	}
	limit := big.NewInt(maxDen)

	abs := new(big.Rat).Abs(v.rat())
	p := new(big.Int).Set(abs.Num())
	q := new(big.Int).Set(abs.Denom())

	// h(-1)=1, h(-2)=0, k(-1)=0, k(-2)=1
	h1, h2 := big.NewInt(1), big.NewInt(0)
	k1, k2 := big.NewInt(0), big.NewInt(1)

	a := new(big.Int)
	rem := new(big.Int)
	for step := 0; step < MaxExpansionSteps; step++ {
		a.QuoRem(p, q, rem)

		h := new(big.Int).Mul(a, h1)
		h.Add(h, h2)
		k := new(big.Int).Mul(a, k1)
		k.Add(k, k2)

		if k.Cmp(limit) > 0 {
			// k(-1) == 0 never reaches here because k(0) == 1 ≤ limit.
			return signed(h1, v.Sign()), k1, true
		}
		if rem.Sign() == 0 {
			return signed(h, v.Sign()), k, true
		}

		h1, h2 = h, h1
		k1, k2 = k, k1
		p, q = q, new(big.Int).Set(rem)
	}

	return nil, nil, false
}

// signed returns a copy of x carrying the given sign.
func signed(x *big.Int, sign int) *big.Int {
	out := new(big.Int).Set(x)
	if sign < 0 {
		out.Neg(out)
	}

	return out
}
