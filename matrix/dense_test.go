// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/stretchr/testify/require"
)

// TestNewAugmentedShape ensures only sizes in [MinSize, MaxSize] are accepted.
func TestNewAugmentedShape(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, 6} {
		_, err := matrix.NewAugmented(n)
		require.ErrorIs(t, err, matrix.ErrBadShape, "size %d", n)
	}
	for n := matrix.MinSize; n <= matrix.MaxSize; n++ {
		m, err := matrix.NewAugmented(n)
		require.NoError(t, err)
		require.Equal(t, n, m.Rows())
		require.Equal(t, n+1, m.Cols())
		require.Equal(t, n, m.Size())
		require.True(t, MustAt(t, m, n-1, n).IsZero())
	}
}

// TestNewFromRowsRagged rejects rows of the wrong length.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromInts([][]int64{{1, 2, 3, 4}, {1, 2, 3}, {1, 2, 3, 4}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromInts([][]int64{{1, 2, 3}, {1, 2, 3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewFromRowsCopies ensures the input slices are not retained.
func TestNewFromRowsCopies(t *testing.T) {
	rows := [][]rational.Rational{
		{rational.One(), rational.Zero(), rational.Zero(), rational.FromInt(2)},
		{rational.Zero(), rational.One(), rational.Zero(), rational.FromInt(3)},
		{rational.Zero(), rational.Zero(), rational.One(), rational.FromInt(4)},
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	rows[0][0] = rational.FromInt(9)
	require.True(t, MustAt(t, m, 0, 0).IsOne())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustInts(t, sampleRows)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(3, 0, rational.One())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustInts(t, sampleRows)
	clone := m.Clone()

	require.NoError(t, clone.Set(0, 0, rational.MustNew(1, 3)))
	require.Equal(t, "2", MustAt(t, m, 0, 0).RatString())
	require.Equal(t, "1/3", MustAt(t, clone, 0, 0).RatString())
	require.False(t, matrix.Equal(m, clone))
}

// TestEqual covers shape mismatch, nil handling and the non-Dense path.
func TestEqual(t *testing.T) {
	a := MustInts(t, sampleRows)
	b := MustInts(t, sampleRows)
	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(hide{a}, b))
	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))

	larger, err := matrix.NewAugmented(4)
	require.NoError(t, err)
	require.False(t, matrix.Equal(a, larger))
}

// TestStringOutput checks the display rendering with the augmented divider.
func TestStringOutput(t *testing.T) {
	m := IdentityAugmented(t, 2, -3, 5)
	require.NoError(t, m.Set(0, 1, rational.MustNew(-1, 2)))

	expected := "[1, -1/2, 0 | 2]\n[0, 1, 0 | -3]\n[0, 0, 1 | 5]\n"
	require.Equal(t, expected, m.String())
}
