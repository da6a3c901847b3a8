// SPDX-License-Identifier: MIT

// Package generator produces fresh puzzle matrices.
//
// A puzzle is a size×(size+1) augmented matrix whose entries are drawn
// independently and uniformly from [-9, 9]. Every zero on the main
// diagonal is then replaced by a draw from [1, 5]. That nudge makes a
// singular coefficient block less likely; it does not rule it out.
//
// Randomness is an injected capability (Source). Nothing in this package
// reads a global RNG: callers pass WithSeed, WithRand or WithSource, and
// Generate fails with ErrNeedRandSource otherwise.
//
// Determinism:
//   - Draw order is fixed: row asc, column asc, then diagonal fixes row asc.
//   - For a fixed seed/Source the output is identical across runs.
//
// Example:
//
//	g, _ := generator.New(generator.WithSeed(42))
//	m, _ := g.Generate(3)
//	fmt.Print(m)
package generator
