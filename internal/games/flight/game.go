// Package flight implements a top-down flight simulator over a small city.
// The pilot collects floating fuel cells to stay airborne while avoiding
// the ground and the skyline.
package flight

import (
	"math"
	"math/rand"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
	"github.com/tommynicol/hexflap/internal/registry"
)

// ID is the registry identifier for the flight simulator.
const ID = "flight"

const (
	debrisCount = 20
	// burstTicks advances the explosion so the frozen frame shows it spread out.
	burstTicks = 5
)

// Game implements the flight simulator.
type Game struct {
	cfg  config.FlightConfig
	diff *config.DifficultyManager
	rt   core.RuntimeConfig

	rng      core.Rand
	fixedRng bool

	city   City
	plane  Plane
	fuel   float64
	cells  []FuelCell
	debris []Debris
	frame  core.InputFrame

	score   int
	tick    int
	crashed bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source used for the city and fuel cells.
func WithRand(r core.Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRng = true
	}
}

// New creates a flight simulator with the given configuration.
func New(cfg config.FlightConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg.Difficulty),
		rt:    core.DefaultConfig(),
		frame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(0))
	}
	g.city = NewCity(cfg.World, g.rng)
	g.restart()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pittsburgh Flight"
}

// LoadConfig replaces the configuration from a YAML file and applies a
// difficulty preset. The city is rebuilt.
func (g *Game) LoadConfig(customPath string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadFlight(customPath)
	if err != nil {
		return err
	}
	cfg.Difficulty.Apply(preset)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.city = NewCity(cfg.World, g.rng)
	g.restart()
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.FlightConfig {
	return g.cfg
}

// Reset binds the game to a runtime config, reseeds and rebuilds the city.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	if !g.fixedRng {
		g.rng = rand.New(rand.NewSource(rt.Seed))
	}
	g.city = NewCity(g.cfg.World, g.rng)
	g.restart()
}

// Start begins a new flight.
func (g *Game) Start() {
	g.restart()
}

// Clear drops the wreck and puts the plane back on its start position.
func (g *Game) Clear() {
	g.restart()
}

func (g *Game) restart() {
	g.plane = newPlane(g.cfg.Plane)
	g.fuel = g.cfg.Fuel.Capacity
	g.debris = nil
	g.frame.Clear()
	g.score = 0
	g.tick = 0
	g.crashed = false

	g.cells = g.cells[:0]
	for i := 0; i < g.cfg.World.FuelCells; i++ {
		g.cells = append(g.cells, newFuelCell(g.cfg.World.Size, g.rng))
	}
}

// Apply latches a control for the next tick. Controls never emit cues.
func (g *Game) Apply(a core.Action) []core.Cue {
	if g.crashed {
		return nil
	}
	switch a {
	case core.ActionForward, core.ActionBack, core.ActionLeft, core.ActionRight,
		core.ActionJump, core.ActionDown:
		g.frame.Set(a)
	}
	return nil
}

// Step advances the flight by one tick.
func (g *Game) Step() core.StepResult {
	if g.crashed {
		return core.StepResult{State: g.state()}
	}

	g.plane.Control(g.frame, g.cfg.Plane)
	g.frame.Clear()

	burn := g.diff.Speed(g.cfg.Fuel.Consumption, g.score, g.tick)
	g.fuel = math.Max(0, g.fuel-burn*(g.plane.Speed+0.5))
	g.tick++

	if g.plane.Pos.Y <= g.cfg.World.CrashAltitude || g.fuel <= 0 {
		g.crash()
		return core.StepResult{State: g.state()}
	}

	var cues []core.Cue
	for i := range g.cells {
		if g.plane.Pos.Dist(g.cells[i].Pos) < g.cfg.World.PickupRadius {
			g.fuel = math.Min(g.cfg.Fuel.Capacity, g.fuel+g.cfg.Fuel.CellAmount)
			g.score += g.cfg.Fuel.CellScore
			g.cells[i] = newFuelCell(g.cfg.World.Size, g.rng)
			cues = append(cues, core.CueScore)
		}
	}

	if g.city.Collides(g.plane.Pos, g.cfg.World.BuildingMargin) {
		g.crash()
		return core.StepResult{State: g.state(), Cues: cues}
	}

	for i := range g.cells {
		c := &g.cells[i]
		c.Rot += c.Spin
		c.Pos.Y += math.Sin(float64(g.tick)/60+c.Pos.X) * 0.02
	}

	return core.StepResult{State: g.state(), Cues: cues}
}

func (g *Game) crash() {
	g.crashed = true
	g.debris = explode(g.plane.Pos, debrisCount, g.rng)
	for i := 0; i < burstTicks; i++ {
		updateDebris(g.debris)
	}
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

// Score returns the score of the current or last flight.
func (g *Game) Score() int {
	return g.score
}

// Plane returns a copy of the aircraft.
func (g *Game) Plane() Plane {
	return g.plane
}

// Fuel returns the remaining fuel.
func (g *Game) Fuel() float64 {
	return g.fuel
}

// FuelCells returns the live fuel cells.
func (g *Game) FuelCells() []FuelCell {
	return g.cells
}

// City returns the scenery.
func (g *Game) City() City {
	return g.city
}

// Debris returns the explosion fragments after a crash.
func (g *Game) Debris() []Debris {
	return g.debris
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(config.DefaultFlightConfig())
	})
}
