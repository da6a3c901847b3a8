// SPDX-License-Identifier: MIT

package cli

import "math/rand"

var hints = []string{
	"Start by getting 1's on the diagonal",
	"Use row swapping to move non-zero elements to the diagonal",
	"Multiply rows to make diagonal elements equal to 1",
	"Use row addition to make elements below the diagonal zero",
	"Work column by column from left to right",
}

// pickHint returns one of the canned hints uniformly at random.
func pickHint(r *rand.Rand) string {
	return hints[r.Intn(len(hints))]
}
