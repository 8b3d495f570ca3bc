package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultFlapYAML []byte

//go:embed defaults/flight.yaml
var defaultFlightYAML []byte

// DefaultFlapConfig returns the built-in HEX FLAP configuration.
func DefaultFlapConfig() FlapConfig {
	return FlapConfig{
		Viewport: FlapViewport{
			Width:  800,
			Height: 600,
		},
		Physics: FlapPhysics{
			Gravity:        0.4,
			JumpVelocity:   -8,
			MaxVelocity:    12,
			RotationFactor: 0.05,
			MaxRotation:    0.5,
			JumpRotation:   -0.3,
		},
		Obstacles: FlapObstacles{
			PipeWidth:     60,
			Gap:           140,
			MinHeight:     50,
			Speed:         2,
			SpawnInterval: 120,
		},
		Player: FlapPlayer{
			X:         80,
			Width:     38,
			Height:    26,
			Growth:    0.02,
			MaxWidth:  65,
			MaxHeight: 42,
		},
		Effects: FlapEffects{
			TrailLength:    10,
			TrailLife:      20,
			JumpParticles:  5,
			DeathParticles: 20,
			ParticleLife:   30,
			Sparkles:       8,
			SparkleLife:    60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 50,
			},
		},
	}
}

// DefaultFlightConfig returns the built-in flight simulator configuration.
func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		World: FlightWorld{
			Size:            200,
			RandomBuildings: 50,
			FuelCells:       15,
			PickupRadius:    3,
			CrashAltitude:   2,
			BuildingMargin:  2,
		},
		Plane: FlightPlane{
			StartAltitude: 50,
			MaxSpeed:      2,
			MoveSpeed:     0.5,
			TurnRate:      0.02,
			MaxBank:       0.3,
			MaxPitch:      0.2,
			Damping:       0.95,
		},
		Fuel: FlightFuel{
			Capacity:    100,
			Consumption: 0.05,
			CellAmount:  20,
			CellScore:   100,
		},
		Difficulty: DifficultyConfig{
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
