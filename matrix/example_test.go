// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// ExampleApply solves a nearly reduced system with one Scale and reports the touched cells.
func ExampleApply() {
	m, err := matrix.NewFromInts([][]int64{{2, 0, 0, 4}, {0, 1, 0, 3}, {0, 0, 1, 5}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	op := matrix.Scale{Row: 0, Factor: rational.MustNew(1, 2)}
	next, changed, err := matrix.Apply(m, op)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(op)
	fmt.Print(next)
	fmt.Println("changed:", changed)
	fmt.Println("complete:", matrix.IsComplete(next))
	// Output:
	// R1 → 1/2·R1
	// [1, 0, 0 | 2]
	// [0, 1, 0 | 3]
	// [0, 0, 1 | 5]
	// changed: [{0 0} {0 3}]
	// complete: true
}

// ExampleApply_zeroFactor shows that scaling by zero is rejected.
func ExampleApply_zeroFactor() {
	m, _ := matrix.NewFromInts([][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 1, 2, 3}})
	_, _, err := matrix.Apply(m, matrix.Scale{Row: 1, Factor: rational.Zero()})
	fmt.Println(err)
	// Output:
	// Apply(R2 → 0·R2): Scale(R2): matrix: cannot scale a row by zero
}
