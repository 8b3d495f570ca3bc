// Package flap implements HEX FLAP, a side-scrolling obstacle game.
// The player steers a data packet through gaps in CPU pipeline stages;
// every cleared stage scores a point and grows the packet.
package flap

import (
	"math/rand"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
	"github.com/tommynicol/hexflap/internal/registry"
)

// ID is the registry identifier for HEX FLAP.
const ID = "flap"

const backgroundSpeed = 0.5

// Game implements the HEX FLAP simulation.
type Game struct {
	cfg  config.FlapConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig

	rng      core.Rand // obstacle geometry
	fxRng    core.Rand // cosmetic effects
	fixedRng bool      // rng injected by WithRand; Reset keeps it

	player    Player
	gen       *Generator
	particles []Particle
	sparkles  []Sparkle
	bgOffset  float64

	score   int
	tick    int
	crashed bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source used for obstacle gaps and effects.
func WithRand(r core.Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.fxRng = r
		g.fixedRng = true
	}
}

// New creates a HEX FLAP game with the given configuration.
func New(cfg config.FlapConfig, opts ...Option) *Game {
	g := &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		rt:   core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.seed(0)
	}
	g.gen = NewGenerator(cfg, g.rng)
	g.player = newPlayer(cfg)
	return g
}

func (g *Game) seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.fxRng = rand.New(rand.NewSource(seed + 1))
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "HEX FLAP"
}

// LoadConfig replaces the configuration from a YAML file and applies a
// difficulty preset. The game returns to the idle state.
func (g *Game) LoadConfig(customPath string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadFlap(customPath)
	if err != nil {
		return err
	}
	cfg.Difficulty.Apply(preset)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.gen = NewGenerator(cfg, g.rng)
	g.Clear()
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.FlapConfig {
	return g.cfg
}

// Reset binds the game to a runtime config and reseeds its random sources.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	if !g.fixedRng {
		g.seed(rt.Seed)
	}
	g.gen = NewGenerator(g.cfg, g.rng)
	g.Clear()
}

// Start begins a new run.
func (g *Game) Start() {
	g.restart()
}

// Clear drops all transient run state and puts the player back at the start.
func (g *Game) Clear() {
	g.restart()
}

func (g *Game) restart() {
	g.player.reset(g.cfg)
	g.gen.Reset()
	g.particles = g.particles[:0]
	g.sparkles = g.sparkles[:0]
	g.score = 0
	g.tick = 0
	g.crashed = false
}

// Apply handles one input during a run. Only jumps have an effect.
func (g *Game) Apply(a core.Action) []core.Cue {
	if g.crashed || a != core.ActionJump {
		return nil
	}

	g.player.Jump(g.cfg.Physics)
	cx, cy := g.player.Center()
	g.particles = burst(g.particles, g.fxRng, cx, cy, g.cfg.Effects.JumpParticles, g.cfg.Effects.ParticleLife)
	return []core.Cue{core.CueJump}
}

// Step advances the game by one tick.
// After a crash the world is frozen and Step only reports state.
func (g *Game) Step() core.StepResult {
	if g.crashed {
		return core.StepResult{State: g.state()}
	}

	g.player.Integrate(g.cfg.Physics, g.cfg.Effects)
	g.particles = updateParticles(g.particles)
	g.sparkles = updateSparkles(g.sparkles)
	g.bgOffset += backgroundSpeed

	speed := g.diff.Speed(g.cfg.Obstacles.Speed, g.score, g.tick)
	interval := g.diff.SpawnInterval(g.cfg.Obstacles.SpawnInterval, g.score, g.tick)
	g.gen.Advance(speed)
	g.gen.MaybeSpawn(g.tick, interval)
	g.tick++

	if g.collides() {
		g.crash()
		return core.StepResult{State: g.state()}
	}

	var cues []core.Cue
	for n := g.gen.Score(g.player.X); n > 0; n-- {
		g.score++
		g.player.Grow(g.cfg.Player, g.score)
		g.sparkles = sparkleBurst(g.sparkles, g.fxRng, g.player.X, g.player.Y,
			g.cfg.Effects.Sparkles, g.cfg.Effects.SparkleLife)
		cues = append(cues, core.CueScore)
	}

	return core.StepResult{State: g.state(), Cues: cues}
}

// collides tests the player against the viewport edges and every obstacle.
func (g *Game) collides() bool {
	r := g.player.Rect()
	if r.Y < 0 || r.Bottom() > g.cfg.Viewport.Height {
		return true
	}
	return g.gen.Collides(r)
}

func (g *Game) crash() {
	g.crashed = true
	cx, cy := g.player.Center()
	g.particles = burst(g.particles, g.fxRng, cx, cy, g.cfg.Effects.DeathParticles, g.cfg.Effects.ParticleLife)
}

func (g *Game) state() core.GameState {
	phase := core.PhasePlaying
	if g.crashed {
		phase = core.PhaseGameOver
	}
	return core.GameState{
		Phase: phase,
		Score: g.score,
		Tick:  g.tick,
	}
}

// Score returns the score of the current or last run.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the player entity.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns the live obstacles, oldest first.
func (g *Game) Obstacles() []Obstacle {
	return g.gen.Obstacles()
}

// Particles returns the live particles.
func (g *Game) Particles() []Particle {
	return g.particles
}

// Sparkles returns the live sparkles.
func (g *Game) Sparkles() []Sparkle {
	return g.sparkles
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(config.DefaultFlapConfig())
	})
}
