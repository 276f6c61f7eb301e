// Package config handles tool configuration loading and management.
package config

// Config holds all charforge settings.
type Config struct {
	Morph   MorphConfig   `yaml:"morph"`
	State   StateConfig   `yaml:"state"`
	Logging LoggingConfig `yaml:"logging"`
}

// MorphConfig holds deformation engine capacity settings.
type MorphConfig struct {
	// MaxTargets bounds the number of morph targets a store accepts.
	MaxTargets int `yaml:"max_targets"`
	// MaxActiveTargets bounds the GPU-side active shape list.
	MaxActiveTargets int `yaml:"max_active_targets"`
}

// StateConfig holds character state persistence settings.
type StateConfig struct {
	File string `yaml:"file"` // Path to the saved character state
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Morph: MorphConfig{
			MaxTargets:       256,
			MaxActiveTargets: 64,
		},
		State: StateConfig{
			File: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
