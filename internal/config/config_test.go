package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedFlapMatchesHardcoded(t *testing.T) {
	cfg, err := LoadFlap("")
	if err != nil {
		t.Fatalf("LoadFlap() failed: %v", err)
	}
	def := DefaultFlapConfig()

	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Obstacles != def.Obstacles {
		t.Errorf("obstacles = %+v, expected %+v", cfg.Obstacles, def.Obstacles)
	}
}

func TestLoadFlapCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flap.yaml")
	data := []byte("physics:\n  gravity: 0.5\nobstacles:\n  gap: 160\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlap(path)
	if err != nil {
		t.Fatalf("LoadFlap() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Gap != 160 {
		t.Errorf("gap = %v, expected 160", cfg.Obstacles.Gap)
	}
	// Unnamed fields keep their defaults
	if cfg.Physics.MaxVelocity != 12 {
		t.Errorf("max_velocity = %v, expected default 12", cfg.Physics.MaxVelocity)
	}
}

func TestLoadFlapCustomMissing(t *testing.T) {
	_, err := LoadFlap(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadFlapCustomInvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flap.yaml")
	data := []byte("viewport:\n  height: 200\nobstacles:\n  gap: 140\n  min_height: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFlap(path); err == nil {
		t.Error("expected validation error when the gap cannot fit")
	}
}

func TestLoadFlight(t *testing.T) {
	cfg, err := LoadFlight("")
	if err != nil {
		t.Fatalf("LoadFlight() failed: %v", err)
	}
	if cfg.Fuel.Capacity != 100 || cfg.World.FuelCells != 15 {
		t.Errorf("unexpected flight defaults: %+v", cfg)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) should be valid", name)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should be invalid")
	}
}

func TestDifficultyApply(t *testing.T) {
	d := DefaultFlapConfig().Difficulty

	d.Apply(DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", d.Enabled, d.InitialLevel)
	}

	d.Apply(DifficultyFixed)
	if d.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := d
	d.Apply("")
	if d != before {
		t.Error("empty preset should not change the config")
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.9})

	if got := dm.Speed(2, 100, 10000); got != 2 {
		t.Errorf("disabled Speed() = %v, expected 2", got)
	}
	if got := dm.SpawnInterval(120, 100, 10000); got != 120 {
		t.Errorf("disabled SpawnInterval() = %v, expected 120", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 100},
	})

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := dm.Level(5, 0); got != 0.5 {
		t.Errorf("Level(5) = %v, expected 0.5", got)
	}
	if got := dm.Level(50, 0); got != 1 {
		t.Errorf("Level(50) = %v, expected clamp to 1", got)
	}
	if got := dm.Speed(2, 10, 0); got != 4 {
		t.Errorf("Speed at max = %v, expected 4", got)
	}
	if got := dm.SpawnInterval(120, 10, 0); got != minSpawnInterval {
		t.Errorf("SpawnInterval at max = %v, expected floor %d", got, minSpawnInterval)
	}
}
