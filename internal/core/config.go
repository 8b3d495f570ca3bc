package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session's position in the Menu -> Playing -> GameOver cycle.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Cue is a named notification emitted on gameplay transitions.
// Listeners decide whether and how to make it audible.
type Cue int

const (
	CueStart Cue = iota
	CueJump
	CueScore
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// GameState is the read-only summary of a session handed to the platform
// and to renderers.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
	Tick      int // Ticks since the current run started
}

// GameOver reports whether the session is in the game-over phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Session.Tick after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Cues emitted during this tick, in order
}

// Rand is the randomness seam used by obstacle and world generation.
// *math/rand.Rand satisfies it; tests inject seeded sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
