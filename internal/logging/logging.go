// Package logging constructs the diagnostic logger.
//
// Storage and parse failures are logged here and nowhere else; they
// never retry and never abort the process.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"taskpad/internal/config"
)

// New builds a logger from config, writing to stderr so TUI output on
// stdout stays clean.
func New(cfg *config.Config) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter builds a logger writing to w. Used by tests.
func NewWithWriter(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.LogLevel),
		Formatter:       parseFormatter(cfg.LogFormat),
		ReportTimestamp: cfg.LogTimestamps,
		Prefix:          "taskpad",
	})
}

// parseLevel maps a level name to a log level, defaulting to warn on
// unknown names.
func parseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return parsed
}

func parseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
