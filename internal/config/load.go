package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.taskpad/taskpad.toml or OS-specific config dir)
// 3. Project config file (taskpad.toml or .taskpad.toml in current directory)
// 4. Environment variables (TASKPAD_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKPAD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKPAD_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TASKPAD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKPAD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskpad", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Persistence backend (file|sqlite)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")

	return fs.Parse(args)
}

// finalizeConfig computes derived values and validates fields.
func finalizeConfig(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)
	if !filepath.IsAbs(cfg.DataDir) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.DataDir = filepath.Join(wd, cfg.DataDir)
	}

	switch cfg.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid backend %q (expected file or sqlite)", cfg.Backend)
	}

	return nil
}

// findUserConfigFile locates the user-level config file, preferring
// ~/.taskpad/taskpad.toml over the OS config dir.
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".taskpad", "taskpad.toml")
		if fileExists(path) {
			return path
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "taskpad", "taskpad.toml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findProjectConfigFile locates a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"taskpad.toml", ".taskpad.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
