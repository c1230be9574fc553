package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"taskpad/internal/config"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &config.Config{LogLevel: "error", LogFormat: "text"})

	logger.Warn("hidden")
	logger.Error("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("warn message logged at error level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("error message missing")
	}
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	if got := parseLevel("chatty"); got != log.WarnLevel {
		t.Errorf("parseLevel: got %v, want warn", got)
	}
	if got := parseLevel("debug"); got != log.DebugLevel {
		t.Errorf("parseLevel: got %v, want debug", got)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &config.Config{LogLevel: "info", LogFormat: "json"})

	logger.Info("structured", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("json output missing field: %q", out)
	}
}
