// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Contract:
//   - Apply never mutates its input; it returns a fresh *Dense.
//   - Application is all-or-nothing: on error no matrix is returned.
//   - ChangedCells lists exactly the cells whose value differs, except for
//     Swap, which reports every cell of both rows.
//
// Determinism:
//   - Fixed loop order (row asc, column asc); ChangedCells is row-major.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rref/rational"
)

const methodApply = "Apply"

// Operation is one of Swap, Scale or AddMultiple.
// The set is closed: Apply rejects anything else with ErrUnknownOperation.
type Operation interface {
	fmt.Stringer

	// Validate checks the operation against a matrix with the given number of rows.
	Validate(size int) error

	isOperation()
}

// Swap exchanges rows A and B verbatim.
type Swap struct {
	A, B int
}

// Scale multiplies every entry of Row by a non-zero Factor.
type Scale struct {
	Row    int
	Factor rational.Rational
}

// AddMultiple performs Target[j] += Factor * Source[j] for every column j.
// A zero Factor is allowed and is a no-op.
type AddMultiple struct {
	Target, Source int
	Factor         rational.Rational
}

var (
	_ Operation = Swap{}
	_ Operation = Scale{}
	_ Operation = AddMultiple{}
)

func (Swap) isOperation()        {}
func (Scale) isOperation()       {}
func (AddMultiple) isOperation() {}

// Validate implements Operation.
func (op Swap) Validate(size int) error {
	return validateRowPair(op.A, op.B, size)
}

// Validate implements Operation. Index errors take priority over ErrZeroFactor.
func (op Scale) Validate(size int) error {
	if err := ValidateRowIndex(op.Row, size); err != nil {
		return err
	}
	if op.Factor.IsZero() {
		return fmt.Errorf("Scale(R%d): %w", op.Row+1, ErrZeroFactor)
	}

	return nil
}

// Validate implements Operation.
func (op AddMultiple) Validate(size int) error {
	return validateRowPair(op.Target, op.Source, size)
}

// String renders "R1 ↔ R2" (rows are 1-based for players).
func (op Swap) String() string {
	return fmt.Sprintf("R%d ↔ R%d", op.A+1, op.B+1)
}

// String renders "R1 → 1/2·R1".
func (op Scale) String() string {
	return fmt.Sprintf("R%d → %s·R%d", op.Row+1, rational.Format(op.Factor), op.Row+1)
}

// String renders "R1 → R1 + 3·R2" or "R1 → R1 - 3·R2".
func (op AddMultiple) String() string {
	sign, f := "+", op.Factor
	if f.Sign() < 0 {
		sign, f = "-", f.Neg()
	}

	return fmt.Sprintf("R%d → R%d %s %s·R%d", op.Target+1, op.Target+1, sign, rational.Format(f), op.Source+1)
}

// Apply performs op on a copy of m.
//
// Implementation:
//   - Stage 1: validate m (non-nil, augmented shape) and op against m.Rows().
//   - Stage 2: copy m into a fresh *Dense and transform the touched row(s).
//   - Stage 3: collect ChangedCells (forced for Swap, exact diff otherwise).
//
// Errors (in priority order): ErrNilMatrix, ErrBadShape, ErrUnknownOperation,
// ErrInvalidRowIndex, ErrSameRow, ErrZeroFactor. On error the returned
// matrix is nil and m is untouched.
//
// Complexity: O(size²) for the copy, O(size) for the arithmetic.
func Apply(m Matrix, op Operation) (*Dense, ChangedCells, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodApply, err)
	}
	if op == nil {
		return nil, nil, fmt.Errorf("%s(nil): %w", methodApply, ErrUnknownOperation)
	}
	if err := op.Validate(m.Rows()); err != nil {
		return nil, nil, fmt.Errorf("%s(%s): %w", methodApply, op, err)
	}

	out := toDense(m)
	c := out.c

	switch o := op.(type) {
	case Swap:
		a, b := o.A*c, o.B*c
		for j := 0; j < c; j++ {
			out.data[a+j], out.data[b+j] = out.data[b+j], out.data[a+j]
		}

		return out, swapCells(o.A, o.B, c), nil

	case Scale:
		base := o.Row * c
		for j := 0; j < c; j++ {
			out.data[base+j] = out.data[base+j].Mul(o.Factor)
		}

		return out, diffRow(m, out, o.Row), nil

	case AddMultiple:
		t, s := o.Target*c, o.Source*c
		for j := 0; j < c; j++ {
			out.data[t+j] = out.data[t+j].Add(o.Factor.Mul(out.data[s+j]))
		}

		return out, diffRow(m, out, o.Target), nil

	default:
		return nil, nil, fmt.Errorf("%s(%T): %w", methodApply, op, ErrUnknownOperation)
	}
}

// swapCells lists every cell of rows a and b in row-major order.
func swapCells(a, b, cols int) ChangedCells {
	if a > b {
		a, b = b, a
	}
	out := make(ChangedCells, 0, 2*cols)
	for _, r := range [2]int{a, b} {
		for j := 0; j < cols; j++ {
			out = append(out, Cell{Row: r, Col: j})
		}
	}

	return out
}

// diffRow lists the cells of row where before and after differ exactly.
func diffRow(before, after Matrix, row int) ChangedCells {
	var out ChangedCells
	for j := 0; j < after.Cols(); j++ {
		if !entry(before, row, j).Equal(entry(after, row, j)) {
			out = append(out, Cell{Row: row, Col: j})
		}
	}

	return out
}

// Diff returns every cell where a and b differ exactly, row-major.
// Errors: ErrNilMatrix, or ErrBadShape when the shapes differ.
func Diff(a, b Matrix) (ChangedCells, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, validatorErrorf("Diff", ErrBadShape)
	}

	var out ChangedCells
	for i := 0; i < a.Rows(); i++ {
		out = append(out, diffRow(a, b, i)...)
	}

	return out, nil
}
