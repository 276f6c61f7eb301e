package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagState     = flag.String("state", "", "Path to character state file")
	flagMaxActive = flag.Int("max-active", 0, "Active shape limit for GPU upload")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagState != "" {
		cfg.State.File = *flagState
	}
	if *flagMaxActive > 0 {
		cfg.Morph.MaxActiveTargets = *flagMaxActive
	}
}
