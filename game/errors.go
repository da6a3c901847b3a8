// SPDX-License-Identifier: MIT

package game

import "errors"

var (
	// ErrAlreadyComplete is returned by Apply and Reset once the current puzzle is solved.
	ErrAlreadyComplete = errors.New("game: puzzle already complete")

	// ErrNotComplete is returned by NextLevel while the puzzle is still in progress.
	ErrNotComplete = errors.New("game: puzzle not complete")
)
