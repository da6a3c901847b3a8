// SPDX-License-Identifier: MIT

// Package game drives the row-reduction puzzle.
//
// A Session owns the only mutable state of the system: the current matrix,
// the generator snapshot it started from, score, moves, level and size.
//
// State machine:
//
//	InProgress --Apply(op)--> InProgress | Complete
//	Complete   --NextLevel()--> InProgress   (level+1; size+1 when the new level is a multiple of 3 and size < 5)
//	any        --NewMatrix()--> InProgress   (same size, level and score)
//	InProgress --Reset()-->     InProgress   (back to the original matrix; refused once Complete)
//
// Scoring: solving a puzzle in n moves awards max(100 - 5n, 20).
//
// Concurrency: every mutating call runs under one mutex. State returns a
// deep copy that can be read without further locking.
package game
