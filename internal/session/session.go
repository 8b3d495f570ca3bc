// Package session drives one game through the Menu -> Playing -> GameOver
// cycle. It latches host input between ticks, keeps the high score and
// fans gameplay cues out to an optional listener.
package session

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tommynicol/hexflap/internal/core"
)

// Game is the simulation a session drives.
type Game interface {
	ID() string
	Start()
	Apply(a core.Action) []core.Cue
	Step() core.StepResult
	Clear()
	Score() int
	Render(dst *core.Screen, st core.GameState)
}

// HighScores persists one integer per key.
type HighScores interface {
	Load(key string) (int, error)
	Store(key string, n int) error
}

// RunRecorder keeps a history of finished runs.
type RunRecorder interface {
	SaveScore(gameID, runID string, score int) error
}

// CueSink receives gameplay cues. Implementations must not block.
type CueSink interface {
	Play(c core.Cue)
}

// Session owns a game and its Menu/Playing/GameOver state.
// It is not safe for concurrent use; the driver calls it from one goroutine.
type Session struct {
	game Game
	key  string

	phase     core.Phase
	highScore int
	ticks     int
	runID     string

	queue   core.InputQueue
	pending []core.Cue

	scores HighScores
	runs   RunRecorder
	sink   CueSink
	logger *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for storage failures and run summaries.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithHighScores sets the high-score store, read once in New.
func WithHighScores(hs HighScores) Option {
	return func(s *Session) {
		s.scores = hs
	}
}

// WithRunRecorder records every finished run.
func WithRunRecorder(r RunRecorder) Option {
	return func(s *Session) {
		s.runs = r
	}
}

// WithCueSink sets the listener for gameplay cues.
func WithCueSink(c CueSink) Option {
	return func(s *Session) {
		s.sink = c
	}
}

// WithKey overrides the high-score storage key (default "<id>_highScore").
func WithKey(key string) Option {
	return func(s *Session) {
		s.key = key
	}
}

// New creates a session in the menu phase and loads the persisted high score.
// A store that cannot be read leaves the high score at 0.
func New(game Game, opts ...Option) *Session {
	s := &Session{
		game:  game,
		key:   game.ID() + "_highScore",
		phase: core.PhaseMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if s.scores != nil {
		hs, err := s.scores.Load(s.key)
		if err != nil {
			s.logger.Warn("high score unavailable, keeping it in memory", "key", s.key, "error", err)
		} else {
			s.highScore = hs
		}
	}

	return s
}

// Enqueue latches an action for the next tick.
func (s *Session) Enqueue(a core.Action) {
	s.queue.Push(a)
}

// HandleInput dispatches one action according to the current phase.
// Actions that mean nothing in the current phase are ignored.
func (s *Session) HandleInput(a core.Action) {
	if a == core.ActionNone {
		return
	}

	switch s.phase {
	case core.PhaseMenu:
		if a == core.ActionStart || a == core.ActionJump {
			s.start()
		}
	case core.PhasePlaying:
		s.emit(s.game.Apply(a)...)
	case core.PhaseGameOver:
		s.game.Clear()
		s.phase = core.PhaseMenu
		s.ticks = 0
	}
}

// Tick drains the input queue in arrival order, then advances the game one
// step if a run is in progress. The result carries every cue emitted since
// the previous tick.
func (s *Session) Tick() core.StepResult {
	for _, a := range s.queue.Drain() {
		s.HandleInput(a)
	}

	if s.phase == core.PhasePlaying {
		res := s.game.Step()
		s.ticks = res.State.Tick
		s.emit(res.Cues...)
		if res.State.GameOver() {
			s.finish()
		}
	}

	cues := s.pending
	s.pending = nil
	return core.StepResult{State: s.State(), Cues: cues}
}

// State returns the current session summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:     s.phase,
		Score:     s.game.Score(),
		HighScore: s.highScore,
		Tick:      s.ticks,
	}
}

// Render draws the game for the current phase. It does not change state.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst, s.State())
}

// RunID returns the identifier of the current or last run.
func (s *Session) RunID() string {
	return s.runID
}

// Game returns the driven game.
func (s *Session) Game() Game {
	return s.game
}

func (s *Session) start() {
	s.game.Start()
	s.phase = core.PhasePlaying
	s.ticks = 0
	s.runID = uuid.NewString()
	s.emit(core.CueStart)
	s.logger.Debug("run started", "game", s.game.ID(), "run", s.runID)
}

// finish moves to game over and records the run.
func (s *Session) finish() {
	s.phase = core.PhaseGameOver
	s.emit(core.CueGameOver)

	score := s.game.Score()
	if score > s.highScore {
		s.highScore = score
		if s.scores != nil {
			if err := s.scores.Store(s.key, score); err != nil {
				s.logger.Warn("high score not persisted", "key", s.key, "error", err)
			}
		}
	}

	if s.runs != nil {
		if err := s.runs.SaveScore(s.game.ID(), s.runID, score); err != nil {
			s.logger.Warn("run not recorded", "run", s.runID, "error", err)
		}
	}

	s.logger.Info("run over", "game", s.game.ID(), "score", score, "high", s.highScore, "ticks", s.ticks)
}

func (s *Session) emit(cues ...core.Cue) {
	for _, c := range cues {
		s.pending = append(s.pending, c)
		if s.sink != nil {
			s.sink.Play(c)
		}
	}
}
