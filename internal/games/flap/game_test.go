package flap

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

// fixedRand always returns the same value, pinning obstacle gaps.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }
func (r fixedRand) Intn(int) int     { return 0 }

// hoverConfig disables gravity and widens the gap so the player can sit
// mid-screen indefinitely.
func hoverConfig() config.FlapConfig {
	cfg := config.DefaultFlapConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.Gap = 500
	return cfg
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newStarted(cfg config.FlapConfig, opts ...Option) *Game {
	g := New(cfg, opts...)
	g.Start()
	return g
}

func TestIntegrateFormula(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	g := newStarted(cfg)

	for i := 0; i < 60; i++ {
		before := g.Player()
		res := g.Step()
		after := g.Player()

		wantV := min(before.Velocity+cfg.Physics.Gravity, cfg.Physics.MaxVelocity)
		if after.Velocity != wantV {
			t.Fatalf("tick %d: velocity = %v, expected %v", i, after.Velocity, wantV)
		}
		if after.Y != before.Y+wantV {
			t.Fatalf("tick %d: y = %v, expected %v", i, after.Y, before.Y+wantV)
		}
		if res.State.GameOver() {
			break
		}
	}
}

func TestJumpOverwritesVelocity(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	g := newStarted(cfg)

	for i := 0; i < 10; i++ {
		g.Step()
	}
	if g.Player().Velocity <= 0 {
		t.Fatal("expected the player to be falling before the jump")
	}

	cues := g.Apply(core.ActionJump)
	if g.Player().Velocity != cfg.Physics.JumpVelocity {
		t.Errorf("velocity after jump = %v, expected %v", g.Player().Velocity, cfg.Physics.JumpVelocity)
	}
	if len(cues) != 1 || cues[0] != core.CueJump {
		t.Errorf("jump cues = %v, expected [jump]", cues)
	}
	if len(g.Particles()) != cfg.Effects.JumpParticles {
		t.Errorf("particles after jump = %d, expected %d", len(g.Particles()), cfg.Effects.JumpParticles)
	}

	// A second jump overwrites rather than adds.
	g.Apply(core.ActionJump)
	if g.Player().Velocity != cfg.Physics.JumpVelocity {
		t.Errorf("velocity after double jump = %v", g.Player().Velocity)
	}
}

func TestApplyIgnoresNonJump(t *testing.T) {
	g := newStarted(config.DefaultFlapConfig())
	for _, a := range []core.Action{core.ActionStart, core.ActionReset, core.ActionLeft} {
		if cues := g.Apply(a); cues != nil {
			t.Errorf("Apply(%v) = %v, expected no cues", a, cues)
		}
	}
	if g.Player().Velocity != 0 {
		t.Error("non-jump input should not touch velocity")
	}
}

func TestPlayerBoxFromSnapshot(t *testing.T) {
	g := newStarted(config.DefaultFlapConfig())
	g.Apply(core.ActionJump)
	g.Step()

	p := g.Player()
	if r := g.Player().Rect(); r != core.NewRect(p.X, p.Y, p.Width, p.Height) {
		t.Errorf("Rect() = %+v, expected the player box", r)
	}
	cx, cy := g.Player().Center()
	if !approx(cx, p.X+p.Width/2) || !approx(cy, p.Y+p.Height/2) {
		t.Errorf("Center() = (%v, %v)", cx, cy)
	}
}

func TestFallScenario(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	g := newStarted(cfg)

	prevY := g.Player().Y
	if prevY != cfg.Viewport.Height/2 {
		t.Fatalf("start y = %v, expected mid-viewport", prevY)
	}

	over := -1
	clamped := false
	for i := 0; i < 120; i++ {
		res := g.Step()
		p := g.Player()
		if res.State.GameOver() {
			over = i
			break
		}
		if p.Y <= prevY {
			t.Fatalf("tick %d: y did not increase (%v -> %v)", i, prevY, p.Y)
		}
		if clamped && !approx(p.Y-prevY, cfg.Physics.MaxVelocity) {
			t.Fatalf("tick %d: expected linear fall at max velocity, moved %v", i, p.Y-prevY)
		}
		if p.Velocity == cfg.Physics.MaxVelocity {
			clamped = true
		}
		prevY = p.Y
	}

	if !clamped {
		t.Error("velocity never reached the clamp")
	}
	if over < 0 {
		t.Fatal("expected the player to cross the bottom boundary within 120 ticks")
	}
	if r := g.Player().Rect(); r.Bottom() <= cfg.Viewport.Height {
		t.Errorf("game over without crossing the bottom: bottom = %v", r.Bottom())
	}
}

func TestObstacleGapInvariant(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	gen := NewGenerator(cfg, rand.New(rand.NewSource(7)))
	lo := cfg.Obstacles.MinHeight
	hi := cfg.Viewport.Height - cfg.Obstacles.Gap - cfg.Obstacles.MinHeight

	for i := 0; i < 1000; i++ {
		gen.Spawn()
	}
	for i, o := range gen.Obstacles() {
		if o.TopHeight < lo || o.TopHeight > hi {
			t.Fatalf("obstacle %d: top %v outside [%v, %v]", i, o.TopHeight, lo, hi)
		}
		if !approx(o.BottomY-o.TopHeight, cfg.Obstacles.Gap) {
			t.Fatalf("obstacle %d: gap %v, expected %v", i, o.BottomY-o.TopHeight, cfg.Obstacles.Gap)
		}
		if o.X != cfg.Viewport.Width {
			t.Fatalf("obstacle %d spawned at x=%v, expected right edge", i, o.X)
		}
	}
}

func TestObstacleRangeDegenerate(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	cfg.Viewport.Height = 100
	gen := NewGenerator(cfg, fixedRand{v: 0.99})

	lo, hi := gen.HeightRange()
	if lo != hi || lo != cfg.Obstacles.MinHeight {
		t.Errorf("HeightRange() = (%v, %v), expected both %v", lo, hi, cfg.Obstacles.MinHeight)
	}
	gen.Spawn()
	if top := gen.Obstacles()[0].TopHeight; top != cfg.Obstacles.MinHeight {
		t.Errorf("top = %v, expected clamp to %v", top, cfg.Obstacles.MinHeight)
	}
}

func TestObstacleRemovedAtTick430(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	cfg.Obstacles.SpawnInterval = 1000
	gen := NewGenerator(cfg, fixedRand{v: 0.5})

	for tick := 0; tick <= 430; tick++ {
		gen.Advance(cfg.Obstacles.Speed)
		gen.MaybeSpawn(tick, cfg.Obstacles.SpawnInterval)

		switch tick {
		case 0:
			if len(gen.Obstacles()) != 1 {
				t.Fatal("expected a spawn at tick 0")
			}
		case 429:
			if len(gen.Obstacles()) != 1 || gen.Obstacles()[0].X != -58 {
				t.Fatalf("tick 429: obstacles = %+v, expected one at x=-58", gen.Obstacles())
			}
		case 430:
			if len(gen.Obstacles()) != 0 {
				t.Fatalf("tick 430: obstacle at x=-pipeWidth should be removed, got %+v", gen.Obstacles())
			}
		}
	}
}

func TestScoringOnePointPerObstacle(t *testing.T) {
	g := newStarted(hoverConfig(), WithRand(fixedRand{v: 0}))

	var scoreCues int
	for i := 0; i < 1000; i++ {
		res := g.Step()
		if res.State.GameOver() {
			t.Fatalf("unexpected game over at tick %d", i)
		}
		for _, c := range res.Cues {
			if c == core.CueScore {
				scoreCues++
			}
		}
	}

	// Spawned at ticks 0..600 in steps of 120, each needs 391 ticks to clear x=80.
	if g.Score() != 6 {
		t.Errorf("score = %d, expected 6", g.Score())
	}
	if scoreCues != g.Score() {
		t.Errorf("score cues = %d, expected %d", scoreCues, g.Score())
	}

	scored := 0
	for _, o := range g.Obstacles() {
		if o.Scored {
			scored++
		}
	}
	if scored > g.Score() {
		t.Errorf("%d live obstacles scored but score is %d", scored, g.Score())
	}
}

func TestScoreIsCountedOnce(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	gen := NewGenerator(cfg, fixedRand{v: 0.5})
	gen.Spawn()
	gen.obstacles[0].X = 0

	if n := gen.Score(80); n != 1 {
		t.Fatalf("first Score() = %d, expected 1", n)
	}
	for i := 0; i < 5; i++ {
		if n := gen.Score(80); n != 0 {
			t.Fatalf("repeat Score() = %d, expected 0", n)
		}
	}
}

func TestPlayerGrowsWithScore(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	p := newPlayer(cfg)

	p.Grow(cfg.Player, 10)
	if !approx(p.Width, 38*1.2) || !approx(p.Height, 26*1.2) {
		t.Errorf("size at 10 = %vx%v, expected %vx%v", p.Width, p.Height, 38*1.2, 26*1.2)
	}

	p.Grow(cfg.Player, 1000)
	if p.Width != cfg.Player.MaxWidth || p.Height != cfg.Player.MaxHeight {
		t.Errorf("size at 1000 = %vx%v, expected cap", p.Width, p.Height)
	}
}

func TestCollisionTransitionsSameTick(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	cfg.Physics.Gravity = 0
	// top = 50, bottom = 190: the player at y 300 sits in the lower region.
	g := newStarted(cfg, WithRand(fixedRand{v: 0}))

	for i := 1; i <= 342; i++ {
		if res := g.Step(); res.State.GameOver() {
			t.Fatalf("step %d: unexpected game over", i)
		}
	}
	// Obstacle left edge is now exactly on the player's right edge.
	if x := g.Obstacles()[0].X; x != g.Player().Rect().Right() {
		t.Fatalf("obstacle x = %v, expected %v", x, g.Player().Rect().Right())
	}

	res := g.Step()
	if !res.State.GameOver() {
		t.Fatal("expected game over on the first overlapping tick")
	}
	if len(g.Particles()) != cfg.Effects.DeathParticles {
		t.Errorf("death particles = %d, expected %d", len(g.Particles()), cfg.Effects.DeathParticles)
	}

	// Frozen after the crash.
	before := g.Player()
	frozen := g.Step()
	if !frozen.State.GameOver() || g.Player().Y != before.Y || frozen.State.Tick != res.State.Tick {
		t.Error("update logic should be frozen after game over")
	}
	if g.Apply(core.ActionJump) != nil {
		t.Error("jump after game over should be ignored")
	}
}

func TestTouchingIsNotCollision(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	gen := NewGenerator(cfg, fixedRand{v: 0.5})
	gen.obstacles = []Obstacle{{X: 100, TopHeight: 200, BottomY: 340}}

	tests := []struct {
		name   string
		player core.Rect
		want   bool
	}{
		{"touching top region from below", core.NewRect(100, 200, 38, 26), false},
		{"touching bottom region from above", core.NewRect(100, 314, 38, 26), false},
		{"touching left edge", core.NewRect(62, 100, 38, 26), false},
		{"touching right edge", core.NewRect(160, 100, 38, 26), false},
		{"inside gap", core.NewRect(110, 250, 38, 26), false},
		{"overlapping top by a hair", core.NewRect(100, 199.9, 38, 26), true},
		{"overlapping bottom by a hair", core.NewRect(100, 314.1, 38, 26), true},
		{"overlapping left edge in upper band", core.NewRect(62.1, 100, 38, 26), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.Collides(tt.player); got != tt.want {
				t.Errorf("Collides(%+v) = %v, expected %v", tt.player, got, tt.want)
			}
		})
	}
}

func TestViewportBoundaryTouching(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	g := newStarted(cfg)

	g.player.Y = 0
	if g.collides() {
		t.Error("player touching the top edge should not collide")
	}
	g.player.Y = cfg.Viewport.Height - g.player.Height
	if g.collides() {
		t.Error("player touching the bottom edge should not collide")
	}
	g.player.Y = -0.1
	if !g.collides() {
		t.Error("player above the top edge should collide")
	}
}

func TestClearAfterGameOver(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	g := newStarted(cfg)

	for i := 0; i < 200; i++ {
		if g.Step().State.GameOver() {
			break
		}
	}
	if !g.state().GameOver() {
		t.Fatal("expected a game over")
	}

	g.Clear()
	if g.Score() != 0 {
		t.Errorf("score after clear = %d", g.Score())
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("obstacles after clear = %d", len(g.Obstacles()))
	}
	p := g.Player()
	if p.X != cfg.Player.X || p.Y != cfg.Viewport.Height/2 || p.Velocity != 0 {
		t.Errorf("player after clear = %+v", p)
	}
	if len(g.Particles()) != 0 || len(p.Trail) != 0 {
		t.Error("transient effects should be cleared")
	}
}

func TestTrailBounded(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	g := newStarted(cfg)

	for i := 0; i < 30; i++ {
		g.Step()
		if n := len(g.Player().Trail); n > cfg.Effects.TrailLength {
			t.Fatalf("trail length %d exceeds %d", n, cfg.Effects.TrailLength)
		}
		if i%8 == 0 {
			g.Apply(core.ActionJump)
		}
	}
	trail := g.Player().Trail
	if len(trail) != cfg.Effects.TrailLength {
		t.Fatalf("trail length = %d, expected %d", len(trail), cfg.Effects.TrailLength)
	}
	// Oldest first: lives increase towards the newest point.
	for i := 1; i < len(trail); i++ {
		if trail[i].Life <= trail[i-1].Life {
			t.Errorf("trail lives not ordered oldest-first: %+v", trail)
			break
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := burst(nil, fixedRand{v: 0.5}, 0, 0, 3, 2)
	if ps[0].Alpha() != 1 {
		t.Errorf("fresh alpha = %v", ps[0].Alpha())
	}
	ps = updateParticles(ps)
	if len(ps) != 3 || ps[0].Alpha() != 0.5 {
		t.Fatalf("after one tick: %d particles alpha %v", len(ps), ps[0].Alpha())
	}
	ps = updateParticles(ps)
	if len(ps) != 0 {
		t.Errorf("expected particles to expire, %d left", len(ps))
	}
}

func TestGameDeterminism(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	run := func() ([]Obstacle, int) {
		g := New(hoverConfig())
		g.Reset(rt)
		g.Start()
		for i := 0; i < 700; i++ {
			if i%15 == 0 {
				g.Apply(core.ActionJump)
			}
			g.Step()
		}
		return append([]Obstacle(nil), g.Obstacles()...), g.Score()
	}

	obs1, score1 := run()
	obs2, score2 := run()

	if score1 != score2 {
		t.Errorf("scores differ: %d vs %d", score1, score2)
	}
	if len(obs1) != len(obs2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(obs1), len(obs2))
	}
	for i := range obs1 {
		if obs1[i] != obs2[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, obs1[i], obs2[i])
		}
	}
}

func TestRenderPhases(t *testing.T) {
	g := newStarted(config.DefaultFlapConfig())
	dst := core.NewScreen(80, 24)

	g.Render(dst, core.GameState{Phase: core.PhaseMenu, HighScore: 3})
	if !strings.Contains(dst.String(), "HEX FLAP") {
		t.Error("menu should show the title")
	}
	if !strings.Contains(dst.String(), "Best Score: 3") {
		t.Error("menu should show the best score")
	}

	for i := 0; i < 5; i++ {
		g.Step()
	}
	before := g.Player()
	tick := g.tick
	g.Render(dst, core.GameState{Phase: core.PhasePlaying, Score: 0})
	if g.Player().Y != before.Y || g.tick != tick {
		t.Error("render must not mutate game state")
	}

	g.Render(dst, core.GameState{Phase: core.PhaseGameOver, Score: 26, HighScore: 30})
	out := dst.String()
	if !strings.Contains(out, "PIPELINE HAZARD") || !strings.Contains(out, "0x1A") {
		t.Errorf("game over overlay missing:\n%s", out)
	}

	// Tiny screens must not panic.
	g.Render(core.NewScreen(0, 0), core.GameState{Phase: core.PhasePlaying})
	g.Render(core.NewScreen(3, 2), core.GameState{Phase: core.PhaseGameOver})
}

func TestHexScore(t *testing.T) {
	if got := HexScore(255); got != "0xFF" {
		t.Errorf("HexScore(255) = %q", got)
	}
	if got := HexScore(0); got != "0x0" {
		t.Errorf("HexScore(0) = %q", got)
	}
}
