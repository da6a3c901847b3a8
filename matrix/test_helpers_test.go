// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the row-operation and RREF tests.
//   • Keep every fixture a valid augmented shape unless a test says otherwise.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the non-*Dense (At-based) paths in code under test.
type hide struct{ matrix.Matrix }

// MustInts builds an augmented *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	if err != nil {
		t.Fatalf("NewFromInts(%v): %v", rows, err)
	}

	return m
}

// IdentityAugmented returns I_n with the given right-hand side column.
func IdentityAugmented(t *testing.T, rhs ...int64) *matrix.Dense {
	t.Helper()
	n := len(rhs)
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n+1)
		rows[i][i] = 1
		rows[i][n] = rhs[i]
	}

	return MustInts(t, rows)
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) rational.Rational {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// sampleRows is a generic, non-RREF 3×4 fixture.
var sampleRows = [][]int64{
	{2, -1, 3, 7},
	{0, 4, -2, 1},
	{5, 0, 9, -3},
}
