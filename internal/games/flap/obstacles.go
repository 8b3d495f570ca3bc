package flap

import (
	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

// Obstacle is a pair of blocking regions with a passable gap between them.
// The upper region covers [0, TopHeight) and the lower one covers
// [BottomY, viewport height).
type Obstacle struct {
	X         float64
	TopHeight float64
	BottomY   float64
	Scored    bool
}

// TopRect returns the collision rectangle above the gap.
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.TopHeight)
}

// BottomRect returns the collision rectangle below the gap.
func (o Obstacle) BottomRect(width, viewportH float64) core.Rect {
	return core.NewRect(o.X, o.BottomY, width, viewportH-o.BottomY)
}

// Generator spawns, moves and evicts obstacles.
type Generator struct {
	obstacles []Obstacle
	rng       core.Rand
	cfg       config.FlapObstacles
	viewportW float64
	viewportH float64
}

// NewGenerator creates a generator drawing gap positions from rng.
func NewGenerator(cfg config.FlapConfig, rng core.Rand) *Generator {
	return &Generator{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg.Obstacles,
		viewportW: cfg.Viewport.Width,
		viewportH: cfg.Viewport.Height,
	}
}

// Reset removes every obstacle.
func (g *Generator) Reset() {
	g.obstacles = g.obstacles[:0]
}

// Obstacles returns the live obstacles, oldest first.
func (g *Generator) Obstacles() []Obstacle {
	return g.obstacles
}

// HeightRange returns the inclusive bounds for TopHeight.
// A viewport too small for the gap collapses the range to MinHeight.
func (g *Generator) HeightRange() (lo, hi float64) {
	lo = g.cfg.MinHeight
	hi = g.viewportH - g.cfg.Gap - g.cfg.MinHeight
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Advance moves every obstacle left by speed and drops the ones that have
// fully left the viewport.
func (g *Generator) Advance(speed float64) {
	for i := range g.obstacles {
		g.obstacles[i].X -= speed
	}

	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.X+g.cfg.PipeWidth > 0 {
			live = append(live, o)
		}
	}
	g.obstacles = live
}

// MaybeSpawn appends one obstacle at the right edge when tick is a multiple
// of interval. Returns true if an obstacle was spawned.
func (g *Generator) MaybeSpawn(tick, interval int) bool {
	if interval <= 0 || tick%interval != 0 {
		return false
	}
	g.Spawn()
	return true
}

// Spawn appends one obstacle at the right edge with a random gap position.
func (g *Generator) Spawn() {
	lo, hi := g.HeightRange()
	top := g.rng.Float64()*(hi-lo) + lo

	g.obstacles = append(g.obstacles, Obstacle{
		X:         g.viewportW,
		TopHeight: top,
		BottomY:   top + g.cfg.Gap,
	})
}

// Score marks every obstacle whose trailing edge has cleared playerX and
// returns how many were newly marked.
func (g *Generator) Score(playerX float64) int {
	passed := 0
	for i := range g.obstacles {
		if !g.obstacles[i].Scored && g.obstacles[i].X+g.cfg.PipeWidth < playerX {
			g.obstacles[i].Scored = true
			passed++
		}
	}
	return passed
}

// Collides reports whether r overlaps any obstacle's blocking regions.
// Touching edges do not count.
func (g *Generator) Collides(r core.Rect) bool {
	for _, o := range g.obstacles {
		if r.Intersects(o.TopRect(g.cfg.PipeWidth)) ||
			r.Intersects(o.BottomRect(g.cfg.PipeWidth, g.viewportH)) {
			return true
		}
	}
	return false
}
