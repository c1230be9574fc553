// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultDataDir   = "~/.taskpad"
	DefaultBackend   = "file"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for taskpad.
type Config struct {
	// Paths
	DataDir string `toml:"data_dir"`

	// Persistence backend: "file" or "sqlite"
	Backend string `toml:"backend"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// setDefaults fills in default values.
func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.Backend = DefaultBackend
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}
