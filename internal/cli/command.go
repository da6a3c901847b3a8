// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
)

// action is what a parsed input line asks the player loop to do.
type action int

const (
	actNone action = iota // blank line
	actApply
	actNew
	actNext
	actReset
	actHint
	actStep
	actShow
	actHelp
	actQuit
)

// command is one parsed line of player input.
type command struct {
	act action
	op  matrix.Operation // set only for actApply
}

// defaultFactor is used when scale/add omit the multiplier.
const defaultFactor = "1"

var verbs = map[string]action{
	"new":   actNew,
	"next":  actNext,
	"reset": actReset,
	"hint":  actHint,
	"step":  actStep,
	"show":  actShow,
	"help":  actHelp,
	"?":     actHelp,
	"quit":  actQuit,
	"exit":  actQuit,
	"q":     actQuit,
}

// parseCommand turns a line such as "swap 1 2", "scale 1 1/2" or
// "add 1 2 -3" into a command. Rows are 1-based on input.
//
//	swap  A B            R_A ↔ R_B
//	scale R [F]          R_R → F·R_R            (F defaults to 1)
//	add   T S [F]        R_T → R_T + F·R_S      (F defaults to 1)
//
// Row bounds are not checked here; the session rejects them.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{act: actNone}, nil
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "swap", "s":
		if len(args) != 2 {
			return command{}, fmt.Errorf("swap needs two rows: %w", ErrUsage)
		}
		a, b, err := parseRows(args[0], args[1])
		if err != nil {
			return command{}, err
		}

		return command{act: actApply, op: matrix.Swap{A: a, B: b}}, nil

	case "scale", "mul", "m":
		if len(args) < 1 {
			return command{}, fmt.Errorf("scale needs a row: %w", ErrUsage)
		}
		r, err := parseRow(args[0])
		if err != nil {
			return command{}, err
		}
		f, err := parseFactor(args[1:])
		if err != nil {
			return command{}, err
		}

		return command{act: actApply, op: matrix.Scale{Row: r, Factor: f}}, nil

	case "add", "a":
		if len(args) < 2 {
			return command{}, fmt.Errorf("add needs target and source rows: %w", ErrUsage)
		}
		t, s, err := parseRows(args[0], args[1])
		if err != nil {
			return command{}, err
		}
		f, err := parseFactor(args[2:])
		if err != nil {
			return command{}, err
		}

		return command{act: actApply, op: matrix.AddMultiple{Target: t, Source: s, Factor: f}}, nil
	}

	act, ok := verbs[verb]
	if !ok {
		return command{}, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}
	if len(args) != 0 {
		return command{}, fmt.Errorf("%s takes no arguments: %w", verb, ErrUsage)
	}

	return command{act: act}, nil
}

// parseRow converts a 1-based row label to a 0-based index.
func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(s), "R"))
	if err != nil {
		return 0, fmt.Errorf("row %q: %w", s, ErrUsage)
	}

	return n - 1, nil
}

func parseRows(a, b string) (int, int, error) {
	ra, err := parseRow(a)
	if err != nil {
		return 0, 0, err
	}
	rb, err := parseRow(b)
	if err != nil {
		return 0, 0, err
	}

	return ra, rb, nil
}

// parseFactor joins the remaining fields so "1 / 2" reads like "1/2".
func parseFactor(args []string) (rational.Rational, error) {
	text := defaultFactor
	if len(args) > 0 {
		text = strings.Join(args, " ")
	}

	return rational.Parse(text)
}
