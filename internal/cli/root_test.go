// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/rref/internal/config"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		cfgFile, verbose, seed = "", false, 0
	})
	err := rootCmd.Execute()

	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "rref "+version+"\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rref.yaml")

	out, err := execute(t, "", "config", "init", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, path)

	_, err = execute(t, "", "config", "init", "--config", path)
	require.ErrorIs(t, err, config.ErrExists)

	out, err = execute(t, "", "config", "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "log_level: info")
	require.Contains(t, out, "show_changes: true")
}

func TestPlayCommand(t *testing.T) {
	out, err := execute(t, "show\nquit\n", "play", "--seed", "11")
	require.NoError(t, err)
	require.Contains(t, out, "Level 1 | Size 3×3 | Moves 0 | Score 0 | in progress")
	require.True(t, strings.HasSuffix(out, "Final score: 0 (level 1)\n"))
}

func TestPlaySeedIsDeterministic(t *testing.T) {
	first, err := execute(t, "quit\n", "play", "--seed", "99")
	require.NoError(t, err)
	second, err := execute(t, "quit\n", "play", "--seed", "99")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
