// Package ui provides the terminal interface: a static welcome screen
// and the animated task list screen.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskpad/internal/config"
	"taskpad/internal/controller"
)

// frameInterval is the animation tick rate. Frames are only scheduled
// while a fade is in flight.
const frameInterval = time.Second / 30

// Run starts the full app on the welcome screen.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger, ctrl *controller.Controller, startupStatus string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newModel(cfg, logger, ctrl, startupStatus, false)
	return runProgram(ctx, model)
}

// RunHello shows only the welcome screen; any key exits.
func RunHello(ctx context.Context) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newModel(nil, nil, nil, "", true)
	return runProgram(ctx, model)
}

func runProgram(ctx context.Context, model *Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
