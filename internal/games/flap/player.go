package flap

import (
	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

// TrailPoint is one remembered player centre, kept for the afterimage.
type TrailPoint struct {
	X, Y float64
	Life int
}

// Player is the chip the user keeps airborne.
// Y is the top of the hitbox; X never changes during a run.
type Player struct {
	X, Y     float64
	Velocity float64
	Width    float64
	Height   float64
	Rotation float64
	Trail    []TrailPoint
}

// newPlayer places a player at the configured start position.
func newPlayer(cfg config.FlapConfig) Player {
	p := Player{}
	p.reset(cfg)
	return p
}

func (p *Player) reset(cfg config.FlapConfig) {
	p.X = cfg.Player.X
	p.Y = startY(cfg)
	p.Velocity = 0
	p.Width = cfg.Player.Width
	p.Height = cfg.Player.Height
	p.Rotation = 0
	p.Trail = p.Trail[:0]
}

// startY resolves the configured start height; zero means the vertical
// centre of the viewport.
func startY(cfg config.FlapConfig) float64 {
	if cfg.Player.Y != 0 {
		return cfg.Player.Y
	}
	return cfg.Viewport.Height / 2
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Center returns the centre of the collision box.
func (p Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Jump overwrites the vertical velocity with the jump constant.
func (p *Player) Jump(phys config.FlapPhysics) {
	p.Velocity = phys.JumpVelocity
	p.Rotation = phys.JumpRotation
}

// Integrate advances the player by one tick:
// v' = min(v + g, maxVelocity), y' = y + v'.
func (p *Player) Integrate(phys config.FlapPhysics, fx config.FlapEffects) {
	p.Velocity += phys.Gravity
	if p.Velocity > phys.MaxVelocity {
		p.Velocity = phys.MaxVelocity
	}
	p.Y += p.Velocity
	p.Rotation = core.ClampF(p.Velocity*phys.RotationFactor, -phys.MaxRotation, phys.MaxRotation)

	p.updateTrail(fx)
}

func (p *Player) updateTrail(fx config.FlapEffects) {
	cx, cy := p.Center()
	p.Trail = append(p.Trail, TrailPoint{X: cx, Y: cy, Life: fx.TrailLife})
	for len(p.Trail) > fx.TrailLength {
		p.Trail = p.Trail[1:]
	}

	live := p.Trail[:0]
	for _, tp := range p.Trail {
		tp.Life--
		if tp.Life > 0 {
			live = append(live, tp)
		}
	}
	p.Trail = live
}

// Grow scales the player box with the score, capped at the configured maximum.
func (p *Player) Grow(cfg config.FlapPlayer, score int) {
	factor := 1 + cfg.Growth*float64(score)
	p.Width = min(cfg.Width*factor, cfg.MaxWidth)
	p.Height = min(cfg.Height*factor, cfg.MaxHeight)
}
