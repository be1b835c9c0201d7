package config

import (
	_ "embed"
)

//go:embed defaults/typer.yaml
var defaultTyperYAML []byte

// DefaultTyperConfig returns the built-in configuration. It mirrors
// defaults/typer.yaml and is used when the embedded file cannot be parsed.
func DefaultTyperConfig() TyperConfig {
	return TyperConfig{
		Field: FieldConfig{
			Width:       1200,
			Height:      800,
			PanelHeight: 100,
		},
		Gameplay: GameplayConfig{
			Lives:         1,
			RestartLives:  5,
			Speed:         100,
			SpawnInterval: 2.5,
			Category:      "Mix",
		},
		Ramp: RampConfig{
			Enabled:      true,
			Every:        15,
			SpeedStep:    10,
			IntervalStep: 0.5,
			MinInterval:  0.5,
		},
	}
}
