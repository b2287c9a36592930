// Package config provides YAML-based application configuration with
// embedded defaults.
package config

// App contains all configuration for tumblesolve.
type App struct {
	Solver  SolverConfig  `yaml:"solver"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Serve   ServeConfig   `yaml:"serve"`
}

// SolverConfig tunes the search.
type SolverConfig struct {
	Workers int `yaml:"workers"` // Goroutines exploring root branches; 1 = sequential
}

// UIConfig tunes the hint presentation.
type UIConfig struct {
	ShowCoordinates bool `yaml:"show_coordinates"`
}

// StorageConfig locates the solve-history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServeConfig tunes the SSH hint server.
type ServeConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
