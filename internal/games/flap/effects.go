package flap

import (
	"math"

	"github.com/tommynicol/hexflap/internal/core"
)

const particleGravity = 0.1

// Particle is a short-lived spark thrown off by jumps and crashes.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
}

// Alpha returns the remaining brightness in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Sparkle is the rotating star shown when an obstacle is scored.
type Sparkle struct {
	X, Y     float64
	Life     int
	MaxLife  int
	Rotation float64
	RotSpeed float64
	Scale    float64
	Size     float64
}

// burst appends count particles at (x, y).
func burst(dst []Particle, rng core.Rand, x, y float64, count, life int) []Particle {
	for i := 0; i < count; i++ {
		dst = append(dst, Particle{
			X:       x,
			Y:       y,
			VX:      (rng.Float64() - 0.5) * 4,
			VY:      (rng.Float64()-0.5)*4 - 2,
			Life:    life,
			MaxLife: life,
			Size:    rng.Float64()*3 + 1,
		})
	}
	return dst
}

// updateParticles advances particles one tick and drops the expired ones.
func updateParticles(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}

// sparkleBurst appends count sparkles scattered around (x, y).
func sparkleBurst(dst []Sparkle, rng core.Rand, x, y float64, count, life int) []Sparkle {
	for i := 0; i < count; i++ {
		dst = append(dst, Sparkle{
			X:        x + (rng.Float64()-0.5)*40,
			Y:        y + (rng.Float64()-0.5)*40,
			Life:     life,
			MaxLife:  life,
			Rotation: rng.Float64() * math.Pi * 2,
			RotSpeed: (rng.Float64() - 0.5) * 0.2,
			Scale:    1,
			Size:     rng.Float64()*8 + 4,
		})
	}
	return dst
}

func updateSparkles(ss []Sparkle) []Sparkle {
	live := ss[:0]
	for _, s := range ss {
		s.Life--
		s.Rotation += s.RotSpeed
		s.Scale = math.Sin(float64(s.Life)*0.2)*0.5 + 0.5
		if s.Life > 0 {
			live = append(live, s)
		}
	}
	return live
}
