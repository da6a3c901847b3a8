// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage, the row
// operation engine and the completion checker.
package matrix

import (
	"github.com/katalvlaran/rref/rational"
)

// Size bounds of a puzzle matrix (coefficient block is size×size).
const (
	MinSize = 3
	MaxSize = 5
)

// Matrix is a two-dimensional array of exact rational entries.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (rational.Rational, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v rational.Rational) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Cell addresses one entry by zero-based row and column.
type Cell struct {
	Row int // zero-based row index
	Col int // zero-based column index; Cols()-1 is the augmented column
}

// ChangedCells lists the cells touched by an operation in row-major order.
type ChangedCells []Cell

// Contains reports whether (row, col) is in the set.
// Complexity: O(len(c)); sets never exceed 2*(MaxSize+1) cells.
func (c ChangedCells) Contains(row, col int) bool {
	for _, cell := range c {
		if cell.Row == row && cell.Col == col {
			return true
		}
	}

	return false
}

// Rows returns the distinct row indices present in the set, ascending.
func (c ChangedCells) Rows() []int {
	var out []int
	for _, cell := range c {
		if n := len(out); n == 0 || out[n-1] != cell.Row {
			out = append(out, cell.Row)
		}
	}

	return out
}
