// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/rref/game"
	"github.com/katalvlaran/rref/internal/config"
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rational"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the RREF puzzle in the terminal",
	Long: `Play reduces randomly generated augmented matrices to reduced row
echelon form using elementary row operations.

Commands (rows are numbered from 1):
  swap A B       exchange rows A and B
  scale R F      multiply row R by F (e.g. 1/2, -3, 0.25)
  add T S F      add F times row S to row T
  new | next | reset | hint | step | show | help | quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

const helpText = `Commands (rows are numbered from 1):
  swap A B     R_A <-> R_B
  scale R [F]  R_R -> F*R_R          (F defaults to 1, must not be 0)
  add T S [F]  R_T -> R_T + F*R_S    (F defaults to 1)
  new          new puzzle at this size
  next         next level (after solving)
  reset        restore the current puzzle
  hint         show a hint
  step         suggest the next elimination move
  show         redraw the matrix
  help         this text
  quit         leave the game
Factors: integers, decimals or fractions such as -3, 0.25, 1/2.
`

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg, verbose)

	sess, err := game.NewSession(game.WithSeed(cfg.Seed), game.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	hintSeed := cfg.Seed
	if hintSeed == 0 {
		hintSeed = time.Now().UnixNano()
	}
	p := newPlayer(sess, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, rand.New(rand.NewSource(hintSeed)))

	return p.run(cmd.Context())
}

// player runs the read-eval-print loop over one game.Session.
type player struct {
	sess    *game.Session
	in      *bufio.Scanner
	out     io.Writer
	cfg     config.Config
	rng     *rand.Rand
	changed matrix.ChangedCells
	err     error // first write error; later writes are skipped
}

func newPlayer(sess *game.Session, in io.Reader, out io.Writer, cfg config.Config, rng *rand.Rand) *player {
	return &player{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
		cfg:  cfg,
		rng:  rng,
	}
}

func (p *player) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, a...)
}

// run loops until quit, end of input or ctx cancellation.
func (p *player) run(ctx context.Context) error {
	p.printf("Reduce the matrix to RREF. Type 'help' for commands.\n\n")
	p.show()

	for p.err == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.printf("> ")
		if !p.in.Scan() {
			p.printf("\n")
			p.farewell()
			if err := p.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			break
		}

		cmd, err := parseCommand(p.in.Text())
		if err != nil {
			p.printf("error: %s\n", describe(err))
			continue
		}
		if cmd.act == actQuit {
			p.farewell()
			break
		}
		p.exec(cmd)
	}

	return p.err
}

// exec performs one non-quit command.
func (p *player) exec(cmd command) {
	switch cmd.act {
	case actNone:
	case actApply:
		p.apply(cmd.op)
	case actNew:
		if err := p.sess.NewMatrix(); err != nil {
			p.printf("error: %s\n", describe(err))
			return
		}
		p.changed = nil
		p.printf("New puzzle.\n")
		p.show()
	case actNext:
		if err := p.sess.NextLevel(); err != nil {
			p.printf("error: %s\n", describe(err))
			return
		}
		p.changed = nil
		p.printf("Level %d!\n", p.sess.State().Level)
		p.show()
	case actReset:
		if err := p.sess.Reset(); err != nil {
			p.printf("error: %s\n", describe(err))
			return
		}
		p.changed = nil
		p.printf("Puzzle reset.\n")
		p.show()
	case actHint:
		if !p.cfg.Hints {
			p.printf("Hints are disabled.\n")
			return
		}
		p.printf("Hint: %s\n", pickHint(p.rng))
	case actStep:
		p.suggest()
	case actShow:
		p.show()
	case actHelp:
		p.printf("%s", helpText)
	}
}

func (p *player) apply(op matrix.Operation) {
	res, err := p.sess.Apply(op)
	if err != nil {
		p.printf("error: %s\n", describe(err))
		return
	}
	p.changed = nil
	if p.cfg.ShowChanges {
		p.changed = res.Changed
	}
	p.printf("%s\n", op)
	p.show()
	if res.Solved {
		p.printf("SOLVED! +%d points\n", res.Award)
		p.printf("Type 'next' for the next level.\n")
	}
}

// suggest prints the next Gauss-Jordan move for the current matrix.
func (p *player) suggest() {
	if !p.cfg.Hints {
		p.printf("Hints are disabled.\n")
		return
	}
	op, ok, err := matrix.NextStep(p.sess.State().Matrix)
	switch {
	case err != nil:
		p.printf("error: %s\n", describe(err))
	case !ok:
		p.printf("Already in reduced row echelon form.\n")
	default:
		p.printf("Try: %s\n", op)
	}
}

// show prints the matrix, marking the last changes, and the stats line.
func (p *player) show() {
	if p.err != nil {
		return
	}
	st := p.sess.State()
	if p.err = renderMatrix(p.out, st.Matrix, p.changed); p.err != nil {
		return
	}
	p.err = renderStats(p.out, st)
}

func (p *player) farewell() {
	st := p.sess.State()
	p.printf("Final score: %d (level %d)\n", st.Score, st.Level)
}

// describe turns errors into player-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, matrix.ErrInvalidRowIndex):
		return "no such row"
	case errors.Is(err, matrix.ErrSameRow):
		return "choose two different rows"
	case errors.Is(err, matrix.ErrZeroFactor):
		return "cannot multiply by zero"
	case errors.Is(err, rational.ErrDivisionByZero):
		return "division by zero in factor"
	case errors.Is(err, rational.ErrMalformed):
		return "invalid multiplier format; use a number or a fraction (e.g. 1/2)"
	case errors.Is(err, game.ErrAlreadyComplete):
		return "puzzle already solved; type 'next' or 'new'"
	case errors.Is(err, game.ErrNotComplete):
		return "solve the puzzle first"
	default:
		return err.Error()
	}
}

// newLogger builds the stderr text logger; debug overrides the configured level.
func newLogger(w io.Writer, cfg config.Config, debug bool) *slog.Logger {
	level := cfg.SlogLevel()
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
