package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"taskpad/internal/config"
	"taskpad/internal/controller"
	"taskpad/internal/kv"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:   t.TempDir(),
		Backend:   "file",
		LogLevel:  "error",
		LogFormat: "text",
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), ".config"))

	err := Run(context.Background(), []string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("got %v, want unknown command error", err)
	}
}

func TestLsEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	if err := lsCommand(testConfig(t), &buf); err != nil {
		t.Fatalf("lsCommand failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No tasks.") {
		t.Errorf("got %q, want empty-store message", buf.String())
	}
}

func TestLsPrintsTasks(t *testing.T) {
	cfg := testConfig(t)

	store, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		t.Fatal(err)
	}
	store.Put(controller.Slot, []byte(`[
  {"id": "abcdef123456", "text": "Buy milk", "completed": false},
  {"id": "fedcba654321", "text": "Walk dog", "completed": true}
]`))
	store.Close()

	var buf bytes.Buffer
	if err := lsCommand(cfg, &buf); err != nil {
		t.Fatalf("lsCommand failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[ ] Buy milk") {
		t.Errorf("missing open task: %q", out)
	}
	if !strings.Contains(out, "[x] Walk dog") {
		t.Errorf("missing done task: %q", out)
	}
}

func TestLsMalformedSlot(t *testing.T) {
	cfg := testConfig(t)

	store, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		t.Fatal(err)
	}
	store.Put(controller.Slot, []byte("not json"))
	store.Close()

	var buf bytes.Buffer
	if err := lsCommand(cfg, &buf); err == nil {
		t.Error("lsCommand accepted malformed slot")
	}
}

func TestDoctorReportsSlotState(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	if err := doctorCommand(cfg, &buf); err != nil {
		t.Fatalf("doctorCommand failed: %v", err)
	}
	if !strings.Contains(buf.String(), "empty") {
		t.Errorf("fresh store: got %q, want empty slot report", buf.String())
	}

	store, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		t.Fatal(err)
	}
	store.Put(controller.Slot, []byte(`[{"id":"a","text":"x","completed":false}]`))
	store.Close()

	buf.Reset()
	if err := doctorCommand(cfg, &buf); err != nil {
		t.Fatalf("doctorCommand failed: %v", err)
	}
	if !strings.Contains(buf.String(), "1 task") {
		t.Errorf("got %q, want task count", buf.String())
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abcdefghij"); got != "abcdefgh" {
		t.Errorf("shortID: got %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID: got %q", got)
	}
}
