// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/rref/generator"
	"github.com/katalvlaran/rref/matrix"
)

// Initial session values.
const (
	InitialSize  = matrix.MinSize
	InitialLevel = 1

	// levelsPerSize: reaching a level divisible by this grows the matrix.
	levelsPerSize = 3
)

// Status is the session state-machine position.
type Status int

const (
	// InProgress: the current puzzle accepts operations.
	InProgress Status = iota
	// Complete: the current puzzle is in RREF and its award has been paid.
	// Only NextLevel or NewMatrix leave this state.
	Complete
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is a deep-copied snapshot of a Session. Safe to read without locks.
type State struct {
	Size      int
	Matrix    *matrix.Dense // current puzzle
	Original  *matrix.Dense // generator output this puzzle started from
	Score     int
	Moves     int
	Level     int
	Status    Status
	LastAward int // points awarded by the most recent solve; 0 before any
}

// IsComplete reports Status == Complete.
func (s State) IsComplete() bool { return s.Status == Complete }

// Result describes the outcome of a successful Apply.
type Result struct {
	Changed matrix.ChangedCells
	Solved  bool // this move completed the puzzle
	Award   int  // points added by this move (0 unless Solved)
}

// Session is the stateful game driver. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	gen *generator.Generator
	log *slog.Logger

	size      int
	current   *matrix.Dense
	original  *matrix.Dense
	score     int
	moves     int
	level     int
	complete  bool
	lastAward int
}

// NewSession starts at size 3, level 1, score 0 with a freshly generated puzzle.
func NewSession(opts ...Option) (*Session, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("NewSession: %w", err)
	}

	s := &Session{
		gen:   cfg.gen,
		log:   cfg.logger,
		size:  InitialSize,
		level: InitialLevel,
	}
	if err := s.startPuzzle(s.size, s.level); err != nil {
		return nil, fmt.Errorf("NewSession: %w", err)
	}

	return s, nil
}

// Apply performs op on the current matrix.
//
// On success moves is incremented; if the result is in RREF the session
// becomes Complete and Award(moves) is added to the score.
// On any error the session is unchanged.
func (s *Session) Apply(op matrix.Operation) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete {
		return Result{}, fmt.Errorf("Apply(%v): %w", op, ErrAlreadyComplete)
	}

	next, changed, err := matrix.Apply(s.current, op)
	if err != nil {
		return Result{}, err
	}

	s.current = next
	s.moves++
	s.log.Debug("operation applied", slog.String("op", op.String()), slog.Int("moves", s.moves))

	res := Result{Changed: changed}
	if matrix.IsComplete(s.current) {
		res.Solved = true
		res.Award = Award(s.moves)
		s.complete = true
		s.score += res.Award
		s.lastAward = res.Award
		s.log.Info("puzzle solved",
			slog.Int("level", s.level),
			slog.Int("size", s.size),
			slog.Int("moves", s.moves),
			slog.Int("award", res.Award),
			slog.Int("score", s.score),
		)
	}

	return res, nil
}

// NextLevel advances a Complete session: level+1, size+1 when the new level
// is a multiple of 3 and size < matrix.MaxSize, then a fresh puzzle.
// Returns ErrNotComplete while InProgress.
func (s *Session) NextLevel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.complete {
		return fmt.Errorf("NextLevel: %w", ErrNotComplete)
	}

	level := s.level + 1
	size := s.size
	if level%levelsPerSize == 0 && size < matrix.MaxSize {
		size++
	}
	if err := s.startPuzzle(size, level); err != nil {
		return fmt.Errorf("NextLevel: %w", err)
	}
	s.log.Info("level up", slog.Int("level", s.level), slog.Int("size", s.size))

	return nil
}

// NewMatrix replaces the puzzle at the current size. Level and score are kept.
func (s *Session) NewMatrix() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.startPuzzle(s.size, s.level); err != nil {
		return fmt.Errorf("NewMatrix: %w", err)
	}

	return nil
}

// Reset restores the original matrix of an unsolved puzzle and clears
// moves. Score, level and size are kept.
// Returns ErrAlreadyComplete once the puzzle is solved, so each puzzle
// pays its award at most once.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete {
		return fmt.Errorf("Reset: %w", ErrAlreadyComplete)
	}
	s.current = s.original.Copy()
	s.moves = 0
	s.log.Debug("puzzle reset", slog.Int("size", s.size))

	return nil
}

// State returns a deep-copied snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Size:      s.size,
		Matrix:    s.current.Copy(),
		Original:  s.original.Copy(),
		Score:     s.score,
		Moves:     s.moves,
		Level:     s.level,
		Status:    InProgress,
		LastAward: s.lastAward,
	}
	if s.complete {
		st.Status = Complete
	}

	return st
}

// startPuzzle generates a puzzle of the given size for level and installs
// it with moves=0 and complete=false. Caller holds mu. On error nothing changes.
func (s *Session) startPuzzle(size, level int) error {
	m, err := s.gen.Generate(size)
	if err != nil {
		return err
	}

	s.size = size
	s.level = level
	s.original = m
	s.current = m.Copy()
	s.moves = 0
	s.complete = false
	s.log.Debug("new puzzle", slog.Int("size", size), slog.Int("level", s.level))

	return nil
}
