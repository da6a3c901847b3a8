// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const methodReduce = "Reduce"

// NextStep returns the next elementary operation of Gauss-Jordan
// elimination on m, or ok=false when m is already in RREF.
//
// Blueprint, per coefficient column c with pivot row r (starting at 0):
//
//	Stage 1 (Find):  first row p ≥ r with a non-zero in column c; none → next column.
//	Stage 2 (Move):  p ≠ r → Swap{r, p}.
//	Stage 3 (Norm):  pivot ≠ 1 → Scale{r, 1/pivot}.
//	Stage 4 (Clear): any other row k with a non-zero in c → AddMultiple{k, r, -m[k][c]}.
//
// Only the first pending step is returned, so a caller can apply it and
// ask again. Singular coefficient blocks are handled: their zero rows end
// up at the bottom. Errors: ErrNilMatrix, ErrBadShape.
//
// Complexity: O(n²).
func NextStep(m Matrix) (Operation, bool, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, false, fmt.Errorf("NextStep: %w", err)
	}
	n := m.Rows()

	r := 0
	for c := 0; c < n && r < n; c++ {
		p := noPivot
		for i := r; i < n; i++ {
			if !entry(m, i, c).IsZero() {
				p = i
				break
			}
		}
		if p == noPivot {
			continue
		}
		if p != r {
			return Swap{A: r, B: p}, true, nil
		}
		if pivot := entry(m, r, c); !pivot.IsOne() {
			inv, _ := pivot.Inverse() // pivot is non-zero
			return Scale{Row: r, Factor: inv}, true, nil
		}
		for k := 0; k < n; k++ {
			if v := entry(m, k, c); k != r && !v.IsZero() {
				return AddMultiple{Target: k, Source: r, Factor: v.Neg()}, true, nil
			}
		}
		r++
	}

	return nil, false, nil
}

// Reduce applies NextStep until m is in RREF and returns the reduced copy
// together with the operations used. m itself is not modified.
//
// At most n·(n+1) operations are needed: per pivot one swap, one scale
// and n-1 eliminations.
func Reduce(m Matrix) (*Dense, []Operation, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodReduce, err)
	}

	cur := toDense(m)
	var ops []Operation
	for {
		op, ok, err := NextStep(cur)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodReduce, err)
		}
		if !ok {
			return cur, ops, nil
		}
		if cur, _, err = Apply(cur, op); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodReduce, err)
		}
		ops = append(ops, op)
	}
}
