// Package config provides YAML-based configuration loading and difficulty
// presets for the typing game.
package config

import (
	"errors"
	"fmt"
)

// TyperConfig contains all tunables of a typing session.
type TyperConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Ramp     RampConfig     `yaml:"ramp"`
}

// FieldConfig is the virtual playfield the engine simulates in.
// The renderer scales it to whatever terminal size is available.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PanelHeight float64 `yaml:"panel_height"`
}

// GameplayConfig holds the starting values of a session.
type GameplayConfig struct {
	Lives         int     `yaml:"lives"`          // Lives on the first session
	RestartLives  int     `yaml:"restart_lives"`  // Lives after confirming the restart menu
	Speed         float64 `yaml:"speed"`          // Field units per second
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	Category      string  `yaml:"category"`       // Word category played by default
}

// RampConfig defines the step difficulty increase.
type RampConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Every        int     `yaml:"every"`
	SpeedStep    float64 `yaml:"speed_step"`
	IntervalStep float64 `yaml:"interval_step"`
	MinInterval  float64 `yaml:"min_interval"`
}

// Validate reports the first value that would make a session unplayable.
func (c TyperConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.PanelHeight < 0 || c.Field.PanelHeight >= c.Field.Height {
		errs = append(errs, fmt.Errorf("panel_height %v must be in [0, height)", c.Field.PanelHeight))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.RestartLives < 1 {
		errs = append(errs, fmt.Errorf("restart_lives must be at least 1, got %d", c.Gameplay.RestartLives))
	}
	if c.Gameplay.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Gameplay.Speed))
	}
	if c.Gameplay.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %v", c.Gameplay.SpawnInterval))
	}
	if c.Ramp.Enabled {
		if c.Ramp.Every < 1 {
			errs = append(errs, fmt.Errorf("ramp.every must be at least 1, got %d", c.Ramp.Every))
		}
		if c.Ramp.SpeedStep < 0 || c.Ramp.IntervalStep < 0 {
			errs = append(errs, errors.New("ramp steps must not be negative"))
		}
		if c.Ramp.MinInterval <= 0 {
			errs = append(errs, fmt.Errorf("ramp.min_interval must be positive, got %v", c.Ramp.MinInterval))
		}
		if c.Gameplay.SpawnInterval < c.Ramp.MinInterval {
			errs = append(errs, fmt.Errorf("spawn_interval %v is below ramp.min_interval %v", c.Gameplay.SpawnInterval, c.Ramp.MinInterval))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid typer config: %w", errors.Join(errs...))
	}
	return nil
}
