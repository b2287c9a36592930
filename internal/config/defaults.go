package config

import (
	_ "embed"
)

//go:embed defaults/tumblesolve.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even
// the embedded YAML cannot be parsed.
func Default() App {
	return App{
		Solver: SolverConfig{Workers: 1},
		UI:     UIConfig{ShowCoordinates: false},
		Storage: StorageConfig{
			Path: "~/.tumblesolve/history.db",
		},
		Serve: ServeConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
