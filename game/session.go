package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

// ErrInvalidConfig is returned by New for unusable board settings.
var ErrInvalidConfig = errors.New("invalid board config")

// Phase is the coarse game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhaseLose
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseLose:
		return "lose"
	case PhaseWin:
		return "win"
	default:
		return "menu"
	}
}

// Over reports whether the phase is terminal.
func (p Phase) Over() bool { return p == PhaseLose || p == PhaseWin }

// Config holds the board settings a session regenerates from.
type Config struct {
	Width           int
	Height          int
	MineProbability float64
}

// Validate checks the dimensions and the probability range.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MineProbability < 0 || c.MineProbability > 1 {
		return fmt.Errorf("%w: mine probability %v not in [0, 1]", ErrInvalidConfig, c.MineProbability)
	}
	return nil
}

// BoardFactory builds a fresh board for a session.
type BoardFactory func(cfg Config) *models.Board

// Option customizes a Session.
type Option func(*Session)

// WithClock sets the stopwatch clock.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.watch = NewStopwatch(now) }
}

// WithRand sets the random source used for mine placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithBoardFactory replaces random board generation.
func WithBoardFactory(f BoardFactory) Option {
	return func(s *Session) { s.factory = f }
}

// WithLogger sets the logger for transitions and rejected actions.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// Session composes a Board and a Stopwatch behind the Menu -> Running ->
// {Win, Lose} -> Menu state machine. It is not safe for concurrent use; the
// host drives one action at a time.
type Session struct {
	cfg     Config
	board   *models.Board
	watch   *Stopwatch
	phase   Phase
	rng     *rand.Rand
	factory BoardFactory
	log     logrus.FieldLogger
}

// New creates a session in the Menu phase with a freshly generated board and
// an idle stopwatch.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:   cfg,
		watch: NewStopwatch(nil),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.factory == nil {
		s.factory = func(cfg Config) *models.Board {
			return models.GenerateBoard(cfg.Width, cfg.Height, cfg.MineProbability, s.rng)
		}
	}
	s.board = s.factory(cfg)
	s.log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  s.board.TotalMines(),
	}).Debug("session created")
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Config returns the board settings.
func (s *Session) Config() Config { return s.cfg }

// Elapsed returns the stopwatch reading; false while the stopwatch is idle.
func (s *Session) Elapsed() (time.Duration, bool) { return s.watch.Elapsed() }

// Tile returns a copy of the tile at idx.
func (s *Session) Tile(idx int) (models.Tile, error) { return s.board.Tile(idx) }

// Index converts a row and column into a tile index.
func (s *Session) Index(row, col int) (int, error) { return s.board.Index(row, col) }

// Start moves Menu to Running and starts the stopwatch.
func (s *Session) Start() bool {
	if s.phase != PhaseMenu {
		return false
	}
	s.watch.Start()
	s.transition(PhaseRunning)
	return true
}

// Reset regenerates the board, idles the stopwatch and returns to Menu. It is
// ignored in Menu.
func (s *Session) Reset() bool {
	if s.phase == PhaseMenu {
		return false
	}
	s.board = s.factory(s.cfg)
	s.watch.Reset()
	s.transition(PhaseMenu)
	return true
}

// Reveal opens a tile while Running.
func (s *Session) Reveal(idx int) (models.Outcome, error) {
	if err := s.checkIndex(idx); err != nil {
		return models.OutcomeIgnored, err
	}
	if s.phase != PhaseRunning {
		return models.OutcomeIgnored, nil
	}
	out, err := s.board.Reveal(idx)
	if err != nil {
		return models.OutcomeIgnored, err
	}
	s.settle(out)
	return out, nil
}

// ToggleFlag flips a flag while Running. Flagging never ends the game.
func (s *Session) ToggleFlag(idx int) (bool, error) {
	if err := s.checkIndex(idx); err != nil {
		return false, err
	}
	if s.phase != PhaseRunning {
		return false, nil
	}
	return s.board.ToggleFlag(idx)
}

// Chord reveals around a satisfied number while Running.
func (s *Session) Chord(idx int) (models.Outcome, error) {
	if err := s.checkIndex(idx); err != nil {
		return models.OutcomeIgnored, err
	}
	if s.phase != PhaseRunning {
		return models.OutcomeIgnored, nil
	}
	out, err := s.board.Chord(idx)
	if err != nil {
		return models.OutcomeIgnored, err
	}
	s.settle(out)
	return out, nil
}

func (s *Session) checkIndex(idx int) error {
	if _, err := s.board.Tile(idx); err != nil {
		s.log.WithFields(logrus.Fields{
			"index": idx,
			"tiles": s.board.Len(),
			"phase": s.phase,
		}).Warn("rejected tile index")
		return err
	}
	return nil
}

// settle applies the terminal transitions for a board outcome. A detonation
// wins over a cleared board.
func (s *Session) settle(out models.Outcome) {
	switch out {
	case models.OutcomeDetonated:
		s.watch.Stop()
		s.transition(PhaseLose)
	case models.OutcomeCleared:
		s.watch.Stop()
		s.transition(PhaseWin)
	}
}

func (s *Session) transition(to Phase) {
	fields := logrus.Fields{"from": s.phase, "to": to}
	if d, ok := s.watch.Elapsed(); ok {
		fields["elapsed"] = d
	}
	s.log.WithFields(fields).Debug("phase change")
	s.phase = to
}
