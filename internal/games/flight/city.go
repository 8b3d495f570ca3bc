package flight

import (
	"math"

	"github.com/tommynicol/hexflap/internal/config"
	"github.com/tommynicol/hexflap/internal/core"
)

// BuildingKind selects how a structure is drawn on the radar.
type BuildingKind int

const (
	KindBlock BuildingKind = iota
	KindTower
	KindCathedral
	KindBridge
)

// Building is a box standing on (or, for bridges, suspended above) the ground.
// X and Z are the footprint centre; Base is the bottom altitude.
type Building struct {
	Name string
	Kind BuildingKind
	X, Z float64
	W, D float64
	H    float64
	Base float64
}

// Top returns the altitude of the roof.
func (b Building) Top() float64 {
	return b.Base + b.H
}

// Radius returns the horizontal collision radius.
func (b Building) Radius(margin float64) float64 {
	return math.Max(b.W, b.D)/2 + margin
}

// Hits reports whether pos is inside the collision volume: horizontally
// within the radius and strictly between base and roof.
func (b Building) Hits(pos core.Vec3, margin float64) bool {
	centre := core.Vec3{X: b.X, Z: b.Z}
	return pos.DistXZ(centre) < b.Radius(margin) &&
		pos.Y > b.Base && pos.Y < b.Top()
}

// River is a flat rotated strip of water, drawn only.
type River struct {
	Name          string
	X, Z          float64
	Length, Width float64
	Angle         float64
}

// Contains reports whether (x, z) lies on the river.
func (r River) Contains(x, z float64) bool {
	dx, dz := x-r.X, z-r.Z
	c, s := math.Cos(r.Angle), math.Sin(r.Angle)
	u := dx*c + dz*s
	v := -dx*s + dz*c
	return math.Abs(u) <= r.Length/2 && math.Abs(v) <= r.Width/2
}

// City holds the static scenery.
type City struct {
	Buildings []Building
	Rivers    []River
}

var landmarks = []Building{
	{Name: "PPG Place", Kind: KindTower, X: 10, Z: 0, W: 4, H: 40, D: 4},
	{Name: "US Steel Tower", Kind: KindTower, X: 12, Z: -5, W: 3, H: 60, D: 3},
	{Name: "BNY Mellon Center", Kind: KindTower, X: 8, Z: 3, W: 3.5, H: 45, D: 3.5},
	{Name: "Heinz Tower", Kind: KindTower, X: 15, Z: 2, W: 3, H: 35, D: 3},
	{Name: "Fifth Avenue Place", Kind: KindTower, X: 6, Z: -2, W: 3, H: 30, D: 3},
	{Name: "Cathedral of Learning", Kind: KindCathedral, X: -30, Z: 20, W: 4, H: 50, D: 4},
	{Name: "Roberto Clemente Bridge", Kind: KindBridge, X: 5, Z: -25, W: 25, H: 1, D: 3, Base: 7.5},
	{Name: "Andy Warhol Bridge", Kind: KindBridge, X: 8, Z: -35, W: 22, H: 1, D: 3, Base: 7.5},
}

var rivers = []River{
	{Name: "Allegheny", X: 20, Z: -30, Length: 60, Width: 8, Angle: 0.3},
	{Name: "Monongahela", X: 15, Z: 30, Length: 50, Width: 8, Angle: -0.2},
	{Name: "Ohio", X: -20, Z: 0, Length: 80, Width: 12, Angle: 0.1},
}

// NewCity builds the landmarks plus random downtown and Oakland blocks.
// Three fifths of the random blocks go downtown.
func NewCity(cfg config.FlightWorld, rng core.Rand) City {
	c := City{
		Buildings: append([]Building(nil), landmarks...),
		Rivers:    append([]River(nil), rivers...),
	}

	downtown := cfg.RandomBuildings * 3 / 5
	for i := 0; i < cfg.RandomBuildings; i++ {
		if i < downtown {
			c.Buildings = append(c.Buildings, Building{
				Kind: KindBlock,
				W:    rng.Float64()*3 + 1,
				H:    rng.Float64()*20 + 5,
				D:    rng.Float64()*3 + 1,
				X:    (rng.Float64()-0.5)*40 + 10,
				Z:    (rng.Float64() - 0.5) * 30,
			})
			continue
		}
		c.Buildings = append(c.Buildings, Building{
			Kind: KindBlock,
			W:    rng.Float64()*2 + 1,
			H:    rng.Float64()*15 + 5,
			D:    rng.Float64()*2 + 1,
			X:    (rng.Float64()-0.5)*30 - 30,
			Z:    (rng.Float64()-0.5)*25 + 20,
		})
	}

	return c
}

// Collides reports whether pos is inside any building.
func (c City) Collides(pos core.Vec3, margin float64) bool {
	for _, b := range c.Buildings {
		if b.Hits(pos, margin) {
			return true
		}
	}
	return false
}

// FuelCell is a floating pickup.
type FuelCell struct {
	Pos  core.Vec3
	Spin float64 // radians per tick
	Rot  float64
}

// newFuelCell places a cell at random within the play area at altitude 20-50.
func newFuelCell(size float64, rng core.Rand) FuelCell {
	return FuelCell{
		Pos: core.Vec3{
			X: (rng.Float64() - 0.5) * size,
			Y: rng.Float64()*30 + 20,
			Z: (rng.Float64() - 0.5) * size,
		},
		Spin: rng.Float64()*0.1 + 0.02,
	}
}

// Debris is one explosion fragment.
type Debris struct {
	Pos  core.Vec3
	Vel  core.Vec3
	Life float64 // 1 at spawn, gone at 0
}

func explode(at core.Vec3, count int, rng core.Rand) []Debris {
	out := make([]Debris, count)
	for i := range out {
		out[i] = Debris{
			Pos: at,
			Vel: core.Vec3{
				X: (rng.Float64() - 0.5) * 10,
				Y: rng.Float64()*8 + 2,
				Z: (rng.Float64() - 0.5) * 10,
			},
			Life: 1,
		}
	}
	return out
}

func updateDebris(ds []Debris) {
	for i := range ds {
		ds[i].Pos = ds[i].Pos.Add(ds[i].Vel)
		ds[i].Vel.Y -= 0.2
		ds[i].Life -= 0.02
	}
}
