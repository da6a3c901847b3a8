// SPDX-License-Identifier: MIT

package matrix

// noPivot marks a zero row (no non-zero entry in the coefficient block).
const noPivot = -1

// IsComplete reports whether m is in reduced row echelon form over its
// coefficient block (columns [0, Rows())). The augmented column is free-form.
//
// Rules, scanning rows top to bottom:
//   - zero rows must be trailing;
//   - pivot columns strictly increase;
//   - every pivot equals exactly 1;
//   - every other entry in a pivot column is exactly 0.
//
// A nil or non-augmented matrix is never complete.
// Pure function; callable on any candidate matrix.
// Complexity: O(n²).
func IsComplete(m Matrix) bool {
	if ValidateAugmented(m) != nil {
		return false
	}
	n := m.Rows()

	lastPivot := noPivot
	inZeroRows := false
	for i := 0; i < n; i++ {
		p := pivotColumn(m, i, n)
		if p == noPivot {
			inZeroRows = true
			continue
		}
		if inZeroRows || p <= lastPivot {
			return false
		}
		if !entry(m, i, p).IsOne() {
			return false
		}
		for k := 0; k < n; k++ {
			if k != i && !entry(m, k, p).IsZero() {
				return false
			}
		}
		lastPivot = p
	}

	return true
}

// PivotColumns returns, for each row, the column of its leading non-zero
// coefficient, or -1 for a zero row. The augmented column is ignored.
// Errors: ErrNilMatrix, ErrBadShape.
func PivotColumns(m Matrix) ([]int, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, err
	}
	n := m.Rows()
	out := make([]int, n)
	for i := range out {
		out[i] = pivotColumn(m, i, n)
	}

	return out, nil
}

// pivotColumn finds the leftmost non-zero entry of row i among columns [0, n).
func pivotColumn(m Matrix, i, n int) int {
	for j := 0; j < n; j++ {
		if !entry(m, i, j).IsZero() {
			return j
		}
	}

	return noPivot
}
