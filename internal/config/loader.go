package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTyper loads the typing game configuration.
// Search order: customPath -> ~/.typer/configs/typer.yaml -> ./configs/typer.yaml -> embedded default.
// Files are applied over the defaults, so a partial file only overrides what it names.
func LoadTyper(customPath string) (TyperConfig, error) {
	// Custom path must exist and be valid
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTyperConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTyper(data)
		if err != nil {
			return DefaultTyperConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Lookup locations are best-effort: broken files fall through
	candidates := []string{userConfigPath("typer.yaml"), filepath.Join("configs", "typer.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTyper(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseTyper(defaultTyperYAML)
	if err != nil {
		return DefaultTyperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTyper decodes YAML over the defaults and validates the result.
func parseTyper(data []byte) (TyperConfig, error) {
	cfg := DefaultTyperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typer", "configs", filename)
}
