package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset selects a starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No ramp, stays at the initial values
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficultyPreset converts a flag value. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyTyperPreset adjusts a config for a preset. Normal keeps the configured
// values untouched; the others scale them.
func ApplyTyperPreset(cfg *TyperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Speed *= 0.8
		cfg.Gameplay.SpawnInterval *= 1.2
		cfg.Gameplay.Lives += 2
		cfg.Gameplay.RestartLives += 2
	case DifficultyHard:
		cfg.Gameplay.Speed *= 1.3
		cfg.Gameplay.SpawnInterval *= 0.8
		if cfg.Gameplay.SpawnInterval < cfg.Ramp.MinInterval {
			cfg.Gameplay.SpawnInterval = cfg.Ramp.MinInterval
		}
	case DifficultyFixed:
		cfg.Ramp.Enabled = false
	}
}
