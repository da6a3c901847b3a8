// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewAugmented: O(n²) zero-init; At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rref/rational"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"  // method tag used in error wrappers
	ctxSet   = "Set" // method tag used in error wrappers
	ctxRow   = "Row"
	ctxShape = "NewAugmented"
	ctxRows  = "NewFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen   = "["
	_fmtRowClose  = "]\n"
	_fmtSep       = ", "
	_fmtAugmented = " | "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major augmented matrix.
//   - r,c hold dimensions; for puzzle matrices c == r+1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int                 // row and column counts
	data []rational.Rational // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewAugmented creates a size×(size+1) zero matrix.
// Errors: ErrBadShape unless MinSize ≤ size ≤ MaxSize.
// Complexity: O(size²).
func NewAugmented(size int) (*Dense, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%s(%d): size not in [%d,%d]: %w", ctxShape, size, MinSize, MaxSize, ErrBadShape)
	}

	return newDense(size, size+1), nil
}

// newDense allocates an r×c zero matrix without shape policy; callers validate.
func newDense(r, c int) *Dense {
	// make() zero-fills; the zero Rational is 0/1.
	return &Dense{r: r, c: c, data: make([]rational.Rational, r*c)}
}

// NewFromRows builds an augmented matrix from explicit rows.
//
// Implementation:
//   - Stage 1: validate len(rows) in [MinSize, MaxSize] and every row has len(rows)+1 entries.
//   - Stage 2: copy entries into a fresh row-major buffer.
//
// The input slices are not retained.
// Errors: ErrBadShape on any shape violation.
func NewFromRows(rows [][]rational.Rational) (*Dense, error) {
	n := len(rows)
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%s: %d rows not in [%d,%d]: %w", ctxRows, n, MinSize, MaxSize, ErrBadShape)
	}
	m := newDense(n, n+1)
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxRows, i, len(row), m.c, ErrBadShape)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewFromInts is NewFromRows for integer literals (denominator 1).
func NewFromInts(rows [][]int64) (*Dense, error) {
	conv := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		conv[i] = make([]rational.Rational, len(row))
		for j, v := range row {
			conv[i][j] = rational.FromInt(v)
		}
	}

	return NewFromRows(conv)
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix (augmented column included).
func (m *Dense) Cols() int {
	return m.c
}

// Size returns the coefficient-block dimension (== Rows()).
func (m *Dense) Size() int {
	return m.r
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (rational.Rational, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return rational.Rational{}, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v rational.Rational) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Rationals are immutable, so copying the slice is a deep copy.
func (m *Dense) Clone() Matrix {
	return m.Copy()
}

// Copy is Clone with the concrete type preserved.
func (m *Dense) Copy() *Dense {
	buf := make([]rational.Rational, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String renders rows as "[a, b, c | d]\n" using the display formatter.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			switch {
			case j == m.c-1 && j > 0:
				sb.WriteString(_fmtAugmented)
			case j > 0:
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(rational.Format(m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Equal reports whether a and b have the same shape and exactly equal entries.
// Two nil matrices are equal; a nil and a non-nil one are not.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if !entry(a, i, j).Equal(entry(b, i, j)) {
				return false
			}
		}
	}

	return true
}

// entry reads (i, j) with a *Dense fast path; callers guarantee bounds.
func entry(m Matrix, i, j int) rational.Rational {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j]
	}
	v, _ := m.At(i, j)

	return v
}

// toDense returns an independent *Dense copy of any Matrix.
func toDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d.Copy()
	}
	out := newDense(m.Rows(), m.Cols())
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			out.data[i*out.c+j] = entry(m, i, j)
		}
	}

	return out
}
