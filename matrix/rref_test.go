// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/stretchr/testify/require"
)

// TestIsComplete covers acceptance and every rejection rule.
func TestIsComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
		want bool
	}{
		{"identity 3", [][]int64{{1, 0, 0, 7}, {0, 1, 0, -2}, {0, 0, 1, 0}}, true},
		{"identity 5", [][]int64{
			{1, 0, 0, 0, 0, 1}, {0, 1, 0, 0, 0, 2}, {0, 0, 1, 0, 0, 3},
			{0, 0, 0, 1, 0, 4}, {0, 0, 0, 0, 1, 5},
		}, true},
		{"unordered pivots", [][]int64{{0, 1, 0, 1}, {1, 0, 0, 2}, {0, 0, 1, 3}}, false},
		{"pivot not one", [][]int64{{2, 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}}, false},
		{"pivot minus one", [][]int64{{1, 0, 0, 1}, {0, -1, 0, 2}, {0, 0, 1, 3}}, false},
		{"nonzero above pivot", [][]int64{{1, 4, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}}, false},
		{"nonzero below pivot", [][]int64{{1, 0, 0, 1}, {3, 1, 0, 2}, {0, 0, 1, 3}}, false},
		{"zero row above nonzero row", [][]int64{{1, 0, 0, 1}, {0, 0, 0, 9}, {0, 1, 0, 3}}, false},
		{"zero row trailing", [][]int64{{1, 0, 0, 1}, {0, 1, 0, 3}, {0, 0, 0, 9}}, true},
		{"all zero rows", [][]int64{{0, 0, 0, 1}, {0, 0, 0, 2}, {0, 0, 0, 3}}, true},
		{"free column", [][]int64{{1, 2, 0, 1}, {0, 0, 1, 3}, {0, 0, 0, 0}}, true},
		{"augmented column ignored", [][]int64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustInts(t, tc.rows)
			require.Equal(t, tc.want, matrix.IsComplete(m))
			require.Equal(t, tc.want, matrix.IsComplete(hide{m}), "non-Dense path")
		})
	}
}

// TestIsCompleteIdentityAnyRHS: I_n augmented with any column is complete.
func TestIsCompleteIdentityAnyRHS(t *testing.T) {
	for n := matrix.MinSize; n <= matrix.MaxSize; n++ {
		rhs := make([]int64, n)
		for i := range rhs {
			rhs[i] = int64(i*7 - 9)
		}
		m := IdentityAugmented(t, rhs...)
		require.NoError(t, m.Set(0, n, rational.MustNew(-13, 17)))
		require.True(t, matrix.IsComplete(m), "n=%d", n)
	}
}

// TestIsCompleteZeroRowOrdering: the same rows are rejected, then accepted once swapped.
func TestIsCompleteZeroRowOrdering(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 0, 0, 4}, {0, 0, 0, 0}, {0, 0, 1, 2}})
	require.False(t, matrix.IsComplete(m))

	swapped, _, err := matrix.Apply(m, matrix.Swap{A: 1, B: 2})
	require.NoError(t, err)
	require.True(t, matrix.IsComplete(swapped))
}

// TestIsCompleteFractionsExact: a pivot of 3·(1/3) is exactly one.
func TestIsCompleteFractionsExact(t *testing.T) {
	m := MustInts(t, [][]int64{{3, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}})
	next, _, err := matrix.Apply(m, matrix.Scale{Row: 0, Factor: rational.MustNew(1, 3)})
	require.NoError(t, err)
	require.True(t, matrix.IsComplete(next))
	require.Equal(t, "1/3", MustAt(t, next, 0, 3).RatString())
}

// TestIsCompleteInvalid: nil and malformed inputs are never complete.
func TestIsCompleteInvalid(t *testing.T) {
	require.False(t, matrix.IsComplete(nil))
	var d *matrix.Dense
	require.False(t, matrix.IsComplete(d))
}

// TestPivotColumns reports leading columns and -1 for zero rows.
func TestPivotColumns(t *testing.T) {
	m := MustInts(t, [][]int64{{0, 2, 1, 1}, {0, 0, 0, 5}, {3, 0, 0, 0}})
	got, err := matrix.PivotColumns(m)
	require.NoError(t, err)
	require.Equal(t, []int{1, -1, 0}, got)

	_, err = matrix.PivotColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
