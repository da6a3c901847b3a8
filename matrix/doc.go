// SPDX-License-Identifier: MIT

// Package matrix holds the numeric core of the row-reduction puzzle.
//
// The matrix package provides:
//
//   - Dense: a row-major size×(size+1) augmented matrix of exact
//     rational.Rational entries (size ∈ [MinSize, MaxSize]); the last column
//     is the right-hand side.
//   - Row operations Swap, Scale and AddMultiple, applied by Apply, which
//     always returns a fresh *Dense plus the ChangedCells set and never
//     mutates its input.
//   - IsComplete: the reduced-row-echelon-form test over the coefficient
//     block; PivotColumns exposes the leading column of every row.
//   - Diff: exact cell-by-cell change detection between two matrices.
//   - NextStep and Reduce: the Gauss-Jordan move sequence toward RREF.
//
// All entries are exact, so "is zero" and "is one" need no tolerance.
// Every failure is returned as a sentinel error (see errors.go); the input
// matrix is valid and unchanged after any error.
//
// Example:
//
//	m, _ := matrix.NewFromInts([][]int64{{2, 0, 0, 4}, {0, 1, 0, 3}, {0, 0, 1, 5}})
//	next, changed, _ := matrix.Apply(m, matrix.Scale{Row: 0, Factor: rational.MustNew(1, 2)})
//	fmt.Println(matrix.IsComplete(next), len(changed)) // true 2
package matrix
