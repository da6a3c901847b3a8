// SPDX-License-Identifier: MIT
package cli

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/stretchr/testify/require"
)

func TestParseCommandOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want matrix.Operation
	}{
		{"swap 1 2", matrix.Swap{A: 0, B: 1}},
		{"S r3 R1", matrix.Swap{A: 2, B: 0}},
		{"scale 1 1/2", matrix.Scale{Row: 0, Factor: rational.MustNew(1, 2)}},
		{"scale 2 1 / 4", matrix.Scale{Row: 1, Factor: rational.MustNew(1, 4)}},
		{"m 3", matrix.Scale{Row: 2, Factor: rational.One()}},
		{"add 1 2 -3", matrix.AddMultiple{Target: 0, Source: 1, Factor: rational.FromInt(-3)}},
		{"  add 3 1 0.25  ", matrix.AddMultiple{Target: 2, Source: 0, Factor: rational.MustNew(1, 4)}},
		{"a 2 3", matrix.AddMultiple{Target: 1, Source: 2, Factor: rational.One()}},
	}
	for _, tc := range tests {
		cmd, err := parseCommand(tc.line)
		require.NoError(t, err, tc.line)
		require.Equal(t, actApply, cmd.act, tc.line)
		require.Equal(t, tc.want.String(), cmd.op.String(), tc.line)
	}
}

func TestParseCommandVerbs(t *testing.T) {
	t.Parallel()

	tests := map[string]action{
		"":      actNone,
		"   ":   actNone,
		"new":   actNew,
		"NEXT":  actNext,
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
	for line, want := range tests {
		cmd, err := parseCommand(line)
		require.NoError(t, err, line)
		require.Equal(t, want, cmd.act, line)
		require.Nil(t, cmd.op)
	}
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		wantErr error
	}{
		{"frob", ErrUnknownCommand},
		{"swap 1", ErrUsage},
		{"swap 1 2 3", ErrUsage},
		{"swap one 2", ErrUsage},
		{"scale", ErrUsage},
		{"scale x 2", ErrUsage},
		{"add 1", ErrUsage},
		{"add 1 b 2", ErrUsage},
		{"quit now", ErrUsage},
		{"scale 1 abc", rational.ErrMalformed},
		{"add 1 2 3/0", rational.ErrDivisionByZero},
	}
	for _, tc := range tests {
		_, err := parseCommand(tc.line)
		require.ErrorIs(t, err, tc.wantErr, tc.line)
	}
}

// Row bounds and zero factors are left for the session to reject.
func TestParseCommandDefersValidation(t *testing.T) {
	cmd, err := parseCommand("scale 0 0")
	require.NoError(t, err)
	require.Equal(t, matrix.Scale{Row: -1, Factor: rational.Zero()}.String(), cmd.op.String())
}
