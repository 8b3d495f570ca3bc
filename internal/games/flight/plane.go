package flight

import (
	"math"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

// Plane is the player's aircraft. Y is altitude; Heading is the yaw in
// radians, 0 pointing along +X.
type Plane struct {
	Pos     core.Vec3
	Heading float64
	Bank    float64
	Pitch   float64
	Speed   float64
}

func newPlane(cfg config.FlightPlane) Plane {
	return Plane{Pos: core.Vec3{Y: cfg.StartAltitude}}
}

// Forward returns the unit vector the plane flies along on the ground plane.
func (p Plane) Forward() core.Vec3 {
	return core.Vec3{X: math.Cos(p.Heading), Z: -math.Sin(p.Heading)}
}

// Control applies one tick of held controls.
func (p *Plane) Control(in core.InputFrame, cfg config.FlightPlane) {
	if in.Has(core.ActionForward) {
		p.Pos = p.Pos.Add(p.Forward().Scale(cfg.MoveSpeed))
		p.Speed = min(p.Speed+0.1, cfg.MaxSpeed)
	}
	if in.Has(core.ActionBack) {
		p.Pos = p.Pos.Add(p.Forward().Scale(-cfg.MoveSpeed * 0.5))
		p.Speed = max(p.Speed-0.1, 0)
	}

	turning := in.Has(core.ActionLeft) || in.Has(core.ActionRight)
	if in.Has(core.ActionLeft) {
		p.Heading += cfg.TurnRate
		p.Bank = min(p.Bank+0.01, cfg.MaxBank)
	}
	if in.Has(core.ActionRight) {
		p.Heading -= cfg.TurnRate
		p.Bank = max(p.Bank-0.01, -cfg.MaxBank)
	}

	climbing := in.Has(core.ActionJump) || in.Has(core.ActionDown)
	if in.Has(core.ActionJump) {
		p.Pos.Y += cfg.MoveSpeed * 0.7
		p.Pitch = min(p.Pitch+0.01, cfg.MaxPitch)
	}
	if in.Has(core.ActionDown) {
		p.Pos.Y -= cfg.MoveSpeed * 0.7
		p.Pitch = max(p.Pitch-0.01, -cfg.MaxPitch)
	}

	// Ease back to level flight
	if !turning {
		p.Bank *= cfg.Damping
	}
	if !climbing {
		p.Pitch *= cfg.Damping
	}
}

// Altitude returns the height above ground, never negative.
func (p Plane) Altitude() float64 {
	return math.Max(0, p.Pos.Y)
}
