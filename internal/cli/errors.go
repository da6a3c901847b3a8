// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrUnknownCommand is returned for an input line whose verb is not recognised.
	ErrUnknownCommand = errors.New("cli: unknown command")

	// ErrUsage is returned when a known verb has missing or malformed arguments.
	ErrUsage = errors.New("cli: bad arguments")
)
