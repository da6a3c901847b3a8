// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rref/game"
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// changedMark follows every cell touched by the last operation.
const changedMark = "*"

// renderMatrix writes one line per row, e.g. "R1 [ 1  0  0 | 2*]".
// Columns are right-aligned to the widest formatted entry.
func renderMatrix(w io.Writer, m *matrix.Dense, changed matrix.ChangedCells) error {
	rows, cols := m.Size(), m.Cols()
	cells := make([][]string, rows)
	width := make([]int, cols)
	for i := 0; i < rows; i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		cells[i] = make([]string, cols)
		for j, v := range row {
			s := rational.Format(v)
			cells[i][j] = s
			if len(s) > width[j] {
				width[j] = len(s)
			}
		}
	}

	var sb strings.Builder
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "R%d [", i+1)
		for j := 0; j < cols; j++ {
			if j == cols-1 {
				sb.WriteString(" |")
			}
			mark := " "
			if changed.Contains(i, j) {
				mark = changedMark
			}
			fmt.Fprintf(&sb, " %*s%s", width[j], cells[i][j], mark)
		}
		sb.WriteString("]\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// renderStats writes the one-line session summary.
func renderStats(w io.Writer, st game.State) error {
	_, err := fmt.Fprintf(w, "Level %d | Size %d×%d | Moves %d | Score %d | %s\n",
		st.Level, st.Size, st.Size, st.Moves, st.Score, st.Status)

	return err
}
