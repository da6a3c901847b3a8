// SPDX-License-Identifier: MIT
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/rref/generator"
	"github.com/katalvlaran/rref/matrix"
)

// zeroish draws 0 whenever the range allows it, otherwise the lower bound.
type zeroish struct{}

func (zeroish) IntRange(lo, hi int) int {
	if lo <= 0 && hi >= 0 {
		return 0
	}

	return lo
}

// ExampleGenerate shows the diagonal nudge: every zero on the diagonal is
// replaced, while off-diagonal zeros stay.
func ExampleGenerate() {
	m, err := generator.Generate(3, generator.WithSource(zeroish{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	fmt.Println("complete:", matrix.IsComplete(m))
	// Output:
	// [1, 0, 0 | 0]
	// [0, 1, 0 | 0]
	// [0, 0, 1 | 0]
	// complete: true
}
