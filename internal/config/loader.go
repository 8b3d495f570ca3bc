package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlap loads HEX FLAP configuration.
// Search order: customPath -> ~/.hexflap/configs/flap.yaml -> ./configs/flap.yaml -> embedded default
func LoadFlap(customPath string) (FlapConfig, error) {
	cfg := DefaultFlapConfig()
	if err := load("flap.yaml", customPath, defaultFlapYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFlight loads flight simulator configuration.
// Search order: customPath -> ~/.hexflap/configs/flight.yaml -> ./configs/flight.yaml -> embedded default
func LoadFlight(customPath string) (FlightConfig, error) {
	cfg := DefaultFlightConfig()
	if err := load("flight.yaml", customPath, defaultFlightYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load decodes the first readable candidate into out. out must already hold
// the hardcoded defaults so a partial YAML file only overrides what it names.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Embedded default; on failure out keeps the hardcoded values.
	//nolint:errcheck // hardcoded defaults already in place
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexflap", "configs", filename)
}

// Validate rejects configurations under which obstacle geometry could not
// be generated on screen.
func (c FlapConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Obstacles.PipeWidth <= 0 || c.Obstacles.Gap <= 0 {
		return fmt.Errorf("config: pipe_width and gap must be positive")
	}
	if c.Obstacles.MinHeight < 0 || c.Viewport.Height-c.Obstacles.Gap-2*c.Obstacles.MinHeight < 0 {
		return fmt.Errorf("config: gap %v with min_height %v does not fit in height %v",
			c.Obstacles.Gap, c.Obstacles.MinHeight, c.Viewport.Height)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval)
	}
	if c.Physics.MaxVelocity <= 0 {
		return fmt.Errorf("config: max_velocity must be positive, got %v", c.Physics.MaxVelocity)
	}
	return nil
}

// Validate rejects flight configurations that cannot produce a playable world.
func (c FlightConfig) Validate() error {
	if c.World.Size <= 0 {
		return fmt.Errorf("config: world size must be positive, got %v", c.World.Size)
	}
	if c.Fuel.Capacity <= 0 {
		return fmt.Errorf("config: fuel capacity must be positive, got %v", c.Fuel.Capacity)
	}
	if c.Plane.StartAltitude <= c.World.CrashAltitude {
		return fmt.Errorf("config: start altitude %v is below crash altitude %v",
			c.Plane.StartAltitude, c.World.CrashAltitude)
	}
	return nil
}
