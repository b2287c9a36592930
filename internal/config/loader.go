package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.tumblesolve/config.yaml ->
// ./configs/tumblesolve.yaml -> embedded default -> hardcoded default.
// Zero-valued fields are filled from the defaults.
func Load(customPath string) (App, error) {
	var cfg App

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/tumblesolve.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return withDefaults(cfg), nil
}

// userConfigPath returns the per-user config path, or empty if home is
// unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tumblesolve", "config.yaml")
}

// withDefaults fills zero-valued fields from the hardcoded defaults.
func withDefaults(cfg App) App {
	def := Default()
	if cfg.Solver.Workers <= 0 {
		cfg.Solver.Workers = def.Solver.Workers
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	if cfg.Serve.Address == "" {
		cfg.Serve.Address = def.Serve.Address
	}
	if cfg.Serve.IdleTimeoutMinutes <= 0 {
		cfg.Serve.IdleTimeoutMinutes = def.Serve.IdleTimeoutMinutes
	}
	return cfg
}
