package flight

import (
	"math"
	"strings"
	"testing"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// openSkyConfig removes random blocks so tests can fly near the origin.
func openSkyConfig() config.FlightConfig {
	cfg := config.DefaultFlightConfig()
	cfg.World.RandomBuildings = 0
	return cfg
}

func newStarted(cfg config.FlightConfig) *Game {
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 42})
	g.Start()
	return g
}

// clearCells moves every fuel cell out of reach.
func clearCells(g *Game) {
	for i := range g.cells {
		g.cells[i].Pos = core.Vec3{X: 1000, Y: 1000, Z: 1000}
	}
}

func TestStartState(t *testing.T) {
	cfg := config.DefaultFlightConfig()
	g := newStarted(cfg)

	p := g.Plane()
	if p.Pos != (core.Vec3{X: 0, Y: 50, Z: 0}) {
		t.Errorf("start position = %+v", p.Pos)
	}
	if g.Fuel() != 100 || g.Score() != 0 {
		t.Errorf("fuel=%v score=%d", g.Fuel(), g.Score())
	}
	if len(g.FuelCells()) != 15 {
		t.Errorf("fuel cells = %d, expected 15", len(g.FuelCells()))
	}
	for i, c := range g.FuelCells() {
		if c.Pos.Y < 20 || c.Pos.Y > 50 || math.Abs(c.Pos.X) > 100 || math.Abs(c.Pos.Z) > 100 {
			t.Errorf("cell %d out of the pickup field: %+v", i, c.Pos)
		}
	}
	if n := len(g.City().Buildings); n != len(landmarks)+50 {
		t.Errorf("buildings = %d, expected %d", n, len(landmarks)+50)
	}
}

func TestIdleFuelBurn(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)

	g.Step()
	if !approx(g.Fuel(), 100-0.05*0.5) {
		t.Errorf("fuel after idle tick = %v, expected %v", g.Fuel(), 100-0.05*0.5)
	}
}

func TestThrottle(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)

	for i := 0; i < 30; i++ {
		g.Apply(core.ActionForward)
		g.Step()
	}
	p := g.Plane()
	if p.Speed != 2 {
		t.Errorf("speed = %v, expected cap at 2", p.Speed)
	}
	if !approx(p.Pos.X, 15) || !approx(p.Pos.Z, 0) {
		t.Errorf("position after 30 forward ticks = %+v, expected x=15", p.Pos)
	}

	g.Apply(core.ActionBack)
	g.Step()
	p = g.Plane()
	if !approx(p.Speed, 1.9) || !approx(p.Pos.X, 14.75) {
		t.Errorf("after back: speed=%v x=%v", p.Speed, p.Pos.X)
	}
}

func TestTurnAndBankDecay(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)

	for i := 0; i < 50; i++ {
		g.Apply(core.ActionLeft)
		g.Step()
	}
	p := g.Plane()
	if !approx(p.Heading, 1.0) {
		t.Errorf("heading = %v, expected 1.0", p.Heading)
	}
	if !approx(p.Bank, 0.3) {
		t.Errorf("bank = %v, expected cap 0.3", p.Bank)
	}

	g.Step()
	if !approx(g.Plane().Bank, 0.3*0.95) {
		t.Errorf("bank after idle tick = %v, expected %v", g.Plane().Bank, 0.3*0.95)
	}
	if g.Plane().Heading != p.Heading {
		t.Error("heading should hold without input")
	}
}

func TestClimbAndDescend(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)

	g.Apply(core.ActionJump)
	g.Step()
	if !approx(g.Plane().Pos.Y, 50.35) || !approx(g.Plane().Pitch, 0.01) {
		t.Errorf("after climb: %+v", g.Plane())
	}

	g.Apply(core.ActionDown)
	g.Step()
	if !approx(g.Plane().Pos.Y, 50) {
		t.Errorf("after descend: y=%v", g.Plane().Pos.Y)
	}
}

func TestCrashAltitude(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		crash bool
	}{
		{"just above", 2.1, false},
		{"at crash altitude", 2, true},
		{"below", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStarted(openSkyConfig())
			clearCells(g)
			g.plane.Pos.Y = tt.y

			res := g.Step()
			if res.State.GameOver() != tt.crash {
				t.Errorf("game over = %v, expected %v", res.State.GameOver(), tt.crash)
			}
			if tt.crash && len(g.Debris()) != debrisCount {
				t.Errorf("debris = %d, expected %d", len(g.Debris()), debrisCount)
			}
		})
	}
}

func TestFuelExhaustion(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)
	g.fuel = 0.01

	res := g.Step()
	if !res.State.GameOver() {
		t.Fatal("expected game over when fuel runs out")
	}
	if g.Fuel() != 0 {
		t.Errorf("fuel = %v, expected floor at 0", g.Fuel())
	}
}

func TestFuelPickup(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)
	g.fuel = 50
	g.cells[3].Pos = core.Vec3{X: 1, Y: 50, Z: 1}

	res := g.Step()
	want := 50 - 0.05*0.5 + 20
	if !approx(g.Fuel(), want) {
		t.Errorf("fuel = %v, expected %v", g.Fuel(), want)
	}
	if g.Score() != 100 {
		t.Errorf("score = %d, expected 100", g.Score())
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueScore {
		t.Errorf("cues = %v, expected [score]", res.Cues)
	}
	if len(g.FuelCells()) != 15 {
		t.Errorf("fuel cells = %d, expected a replacement", len(g.FuelCells()))
	}
	if g.cells[3].Pos == (core.Vec3{X: 1, Y: 50, Z: 1}) {
		t.Error("collected cell should be replaced")
	}
}

func TestFuelPickupCapped(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)
	g.fuel = 95
	g.cells[0].Pos = g.plane.Pos

	g.Step()
	if g.Fuel() != 100 {
		t.Errorf("fuel = %v, expected cap at 100", g.Fuel())
	}
}

func TestBuildingCollision(t *testing.T) {
	// US Steel Tower: centre (12, -5), 3x3 footprint, 60 tall; radius 3.5.
	tests := []struct {
		name  string
		pos   core.Vec3
		crash bool
	}{
		{"inside footprint", core.Vec3{X: 12, Y: 30, Z: -5}, true},
		{"within margin", core.Vec3{X: 15.4, Y: 30, Z: -5}, true},
		{"exactly on radius", core.Vec3{X: 15.5, Y: 30, Z: -5}, false},
		{"level with roof", core.Vec3{X: 12, Y: 60, Z: -5}, false},
		{"above roof", core.Vec3{X: 12, Y: 61, Z: -5}, false},
		{"under bridge", core.Vec3{X: 5, Y: 5, Z: -25}, false},
		{"through bridge deck", core.Vec3{X: 5, Y: 8, Z: -25}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStarted(openSkyConfig())
			clearCells(g)
			g.plane.Pos = tt.pos

			res := g.Step()
			if res.State.GameOver() != tt.crash {
				t.Errorf("game over = %v, expected %v", res.State.GameOver(), tt.crash)
			}
		})
	}
}

func TestFrozenAfterCrash(t *testing.T) {
	g := newStarted(openSkyConfig())
	clearCells(g)
	g.plane.Pos.Y = 1
	g.Step()

	before := g.Plane()
	fuel := g.Fuel()
	g.Apply(core.ActionForward)
	res := g.Step()
	if !res.State.GameOver() || g.Plane() != before || g.Fuel() != fuel {
		t.Error("simulation should be frozen after a crash")
	}
}

func TestClearRestoresStart(t *testing.T) {
	g := newStarted(openSkyConfig())
	g.plane.Pos.Y = 1
	g.score = 300
	g.Step()

	g.Clear()
	if g.Score() != 0 || g.Fuel() != 100 || g.crashed {
		t.Errorf("after clear: score=%d fuel=%v crashed=%v", g.Score(), g.Fuel(), g.crashed)
	}
	if g.Plane().Pos != (core.Vec3{Y: 50}) {
		t.Errorf("plane at %+v", g.Plane().Pos)
	}
	if len(g.Debris()) != 0 {
		t.Error("debris should be cleared")
	}
}

func TestCityDeterministic(t *testing.T) {
	cfg := config.DefaultFlightConfig()
	a := New(cfg)
	a.Reset(core.RuntimeConfig{Seed: 7})
	b := New(cfg)
	b.Reset(core.RuntimeConfig{Seed: 7})

	ba, bb := a.City().Buildings, b.City().Buildings
	if len(ba) != len(bb) {
		t.Fatalf("building counts differ")
	}
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("building %d differs: %+v vs %+v", i, ba[i], bb[i])
		}
	}
}

func TestRiverContains(t *testing.T) {
	r := River{X: 0, Z: 0, Length: 10, Width: 2}
	if !r.Contains(4.9, 0.9) {
		t.Error("point inside the strip")
	}
	if r.Contains(0, 1.5) {
		t.Error("point beside the strip")
	}

	rotated := River{X: 0, Z: 0, Length: 10, Width: 2, Angle: math.Pi / 2}
	if !rotated.Contains(0, 4.5) || rotated.Contains(4.5, 0) {
		t.Error("rotation not applied")
	}
}

func TestHeadingArrow(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↓'},
		{2 * math.Pi, '→'},
	}
	for _, tt := range tests {
		if got := headingArrow(tt.heading); got != tt.want {
			t.Errorf("headingArrow(%v) = %q, expected %q", tt.heading, got, tt.want)
		}
	}
}

func TestRenderPhases(t *testing.T) {
	g := newStarted(config.DefaultFlightConfig())
	dst := core.NewScreen(80, 24)

	g.Render(dst, core.GameState{Phase: core.PhaseMenu})
	if !strings.Contains(dst.String(), "PITTSBURGH FLIGHT") {
		t.Error("menu should show the title")
	}

	g.Render(dst, core.GameState{Phase: core.PhasePlaying})
	if !strings.Contains(dst.Row(0), "FUEL") {
		t.Errorf("HUD missing: %q", dst.Row(0))
	}
	if dst.Get(40, 2+11) != '→' {
		t.Errorf("plane marker = %q, expected → at the radar centre", dst.Get(40, 13))
	}

	g.plane.Pos.Y = 1
	g.Step()
	g.Render(dst, core.GameState{Phase: core.PhaseGameOver, Score: 0})
	if !strings.Contains(dst.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	g.Render(core.NewScreen(10, 2), core.GameState{Phase: core.PhasePlaying})
	g.Render(core.NewScreen(0, 0), core.GameState{Phase: core.PhaseMenu})
}
