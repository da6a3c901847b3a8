// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/rref/game"
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/stretchr/testify/require"
)

func TestRenderMatrix(t *testing.T) {
	m, err := matrix.NewFromInts([][]int64{{1, 0, 10, 4}, {0, -1, 0, 3}, {0, 0, 1, -25}})
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, rational.MustNew(1, 3)))

	var buf bytes.Buffer
	require.NoError(t, renderMatrix(&buf, m, matrix.ChangedCells{{Row: 0, Col: 1}}))
	require.Equal(t, ""+
		"R1 [ 1  1/3* 10  |   4 ]\n"+
		"R2 [ 0   -1   0  |   3 ]\n"+
		"R3 [ 0    0   1  | -25 ]\n", buf.String())
}

func TestRenderMatrixNoChanges(t *testing.T) {
	m, err := matrix.NewFromInts([][]int64{{2, 0, 0, 4}, {0, 1, 0, 3}, {0, 0, 1, 5}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderMatrix(&buf, m, nil))
	require.Equal(t, ""+
		"R1 [ 2  0  0  | 4 ]\n"+
		"R2 [ 0  1  0  | 3 ]\n"+
		"R3 [ 0  0  1  | 5 ]\n", buf.String())
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	st := game.State{Size: 4, Level: 3, Moves: 2, Score: 190, Status: game.Complete}
	require.NoError(t, renderStats(&buf, st))
	require.Equal(t, "Level 3 | Size 4×4 | Moves 2 | Score 190 | complete\n", buf.String())
}
