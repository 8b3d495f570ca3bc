// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

// FlapConfig contains all configuration for HEX FLAP.
// Distances are world units on a Viewport.Width x Viewport.Height field;
// rates are per tick.
type FlapConfig struct {
	Viewport   FlapViewport     `yaml:"viewport"`
	Physics    FlapPhysics      `yaml:"physics"`
	Obstacles  FlapObstacles    `yaml:"obstacles"`
	Player     FlapPlayer       `yaml:"player"`
	Effects    FlapEffects      `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlapViewport is the size of the play field.
type FlapViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlapPhysics defines the integrator constants.
type FlapPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpVelocity   float64 `yaml:"jump_velocity"` // negative = up
	MaxVelocity    float64 `yaml:"max_velocity"`
	RotationFactor float64 `yaml:"rotation_factor"`
	MaxRotation    float64 `yaml:"max_rotation"`
	JumpRotation   float64 `yaml:"jump_rotation"`
}

// FlapObstacles defines obstacle generation.
type FlapObstacles struct {
	PipeWidth     float64 `yaml:"pipe_width"`
	Gap           float64 `yaml:"gap"`
	MinHeight     float64 `yaml:"min_height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between spawns
}

// FlapPlayer defines the player box and how it grows with score.
type FlapPlayer struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"` // 0 = vertical centre of the viewport
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Growth    float64 `yaml:"growth"` // fractional size increase per point
	MaxWidth  float64 `yaml:"max_width"`
	MaxHeight float64 `yaml:"max_height"`
}

// FlapEffects defines the cosmetic trail and particle budgets.
type FlapEffects struct {
	TrailLength    int `yaml:"trail_length"`
	TrailLife      int `yaml:"trail_life"`
	JumpParticles  int `yaml:"jump_particles"`
	DeathParticles int `yaml:"death_particles"`
	ParticleLife   int `yaml:"particle_life"`
	Sparkles       int `yaml:"sparkles"`
	SparkleLife    int `yaml:"sparkle_life"`
}

// FlightConfig contains all configuration for the flight simulator.
type FlightConfig struct {
	World      FlightWorld      `yaml:"world"`
	Plane      FlightPlane      `yaml:"plane"`
	Fuel       FlightFuel       `yaml:"fuel"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlightWorld defines the city and the pickup field.
type FlightWorld struct {
	Size            float64 `yaml:"size"` // side of the square play area
	RandomBuildings int     `yaml:"random_buildings"`
	FuelCells       int     `yaml:"fuel_cells"`
	PickupRadius    float64 `yaml:"pickup_radius"`
	CrashAltitude   float64 `yaml:"crash_altitude"`
	BuildingMargin  float64 `yaml:"building_margin"`
}

// FlightPlane defines control response.
type FlightPlane struct {
	StartAltitude float64 `yaml:"start_altitude"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MoveSpeed     float64 `yaml:"move_speed"`
	TurnRate      float64 `yaml:"turn_rate"`
	MaxBank       float64 `yaml:"max_bank"`
	MaxPitch      float64 `yaml:"max_pitch"`
	Damping       float64 `yaml:"damping"`
}

// FlightFuel defines consumption and pickups.
type FlightFuel struct {
	Capacity    float64 `yaml:"capacity"`
	Consumption float64 `yaml:"consumption"`
	CellAmount  float64 `yaml:"cell_amount"`
	CellScore   int     `yaml:"cell_score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "leave the
// config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply modifies d according to a preset. Empty presets are a no-op.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
		if d.Progression.Type == "" || d.Progression.Type == "none" {
			d.Progression.Type = "score"
		}
	}
}
