// SPDX-License-Identifier: MIT

// Package rref is a puzzle game about reduced row echelon form: reduce a
// randomly generated augmented matrix using elementary row operations, with
// exact rational arithmetic throughout.
//
// The module is organized into small packages:
//
//	rational/   exact fractions: parsing player input, bounded-denominator display
//	matrix/     augmented Dense matrix, Swap/Scale/AddMultiple, IsComplete, NextStep
//	generator/  random puzzles with a non-zero diagonal and an injectable Source
//	game/       the Session state machine: moves, score, levels, sizes 3..5
//	cmd/rref    terminal front end (cobra + viper), see internal/cli
//
// Quick example:
//
//	s, _ := game.NewSession(game.WithSeed(42))
//	res, err := s.Apply(matrix.Swap{A: 0, B: 1})
//	if err == nil && res.Solved {
//		_ = s.NextLevel()
//	}
//
// Scoring: a solve awards max(100 − 5·moves, 20) points; every third level
// grows the matrix by one row until the 5×5 cap.
//
//	go install github.com/katalvlaran/rref/cmd/rref@latest
package rref
