// SPDX-License-Identifier: MIT

package game

// Scoring constants.
const (
	BaseAward   = 100
	MovePenalty = 5
	MinAward    = 20
)

// Award returns the points for solving a puzzle in the given number of moves.
func Award(moves int) int {
	return max(BaseAward-moves*MovePenalty, MinAward)
}
