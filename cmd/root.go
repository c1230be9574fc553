// Package cmd implements the CLI command structure for taskpad.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskpad/internal/config"
	"taskpad/internal/controller"
	"taskpad/internal/kv"
	"taskpad/internal/logging"
	"taskpad/internal/task"
	"taskpad/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskpad CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskpad", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; no args means the TUI.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg)
	case "hello":
		return ui.RunHello(ctx)
	case "ls":
		return lsCommand(cfg, os.Stdout)
	case "doctor":
		return doctorCommand(cfg, os.Stdout)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand opens the store and runs the full two-screen app.
func tuiCommand(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg)

	store, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	ctrl := controller.New(store, logger)
	startupStatus := ""
	if err := ctrl.Load(); err != nil {
		// Malformed slot: start empty but tell the user instead of
		// silently dropping their data.
		startupStatus = fmt.Sprintf("Stored tasks could not be read (%v); starting empty", err)
	}

	return ui.Run(ctx, cfg, logger, ctrl, startupStatus)
}

// lsCommand prints the persisted task list without a TTY.
func lsCommand(cfg *config.Config, w io.Writer) error {
	store, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	data, err := store.Get(controller.Slot)
	if errors.Is(err, kv.ErrNotFound) {
		fmt.Fprintln(w, "No tasks.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading tasks: %w", err)
	}

	list, err := task.Decode(data)
	if err != nil {
		return fmt.Errorf("stored task list is malformed: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return nil
	}

	for _, t := range list {
		check := " "
		if t.Completed {
			check = "x"
		}
		fmt.Fprintf(w, "[%s] %s  (%s)\n", check, t.Text, shortID(t.ID))
	}
	return nil
}

// doctorCommand reports the effective configuration and slot health.
func doctorCommand(cfg *config.Config, w io.Writer) error {
	fmt.Fprintln(w, "taskpad doctor")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Version:  %s\n", Version)
	fmt.Fprintf(w, "  Data dir: %s\n", cfg.DataDir)
	fmt.Fprintf(w, "  Backend:  %s\n", cfg.Backend)

	store, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		fmt.Fprintf(w, "  Store:    ERROR: %v\n", err)
		return nil
	}
	defer store.Close()

	data, err := store.Get(controller.Slot)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		fmt.Fprintln(w, "  Slot:     empty (no tasks saved yet)")
	case err != nil:
		fmt.Fprintf(w, "  Slot:     ERROR: %v\n", err)
	default:
		list, derr := task.Decode(data)
		if derr != nil {
			fmt.Fprintf(w, "  Slot:     MALFORMED: %v\n", derr)
		} else {
			fmt.Fprintf(w, "  Slot:     ok, %d task(s)\n", len(list))
		}
	}
	return nil
}

func versionCommand() error {
	fmt.Printf("taskpad %s\n", Version)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "taskpad - a small terminal to-do app")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskpad [flags] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui      Open the task screen (default)")
	fmt.Fprintln(w, "  hello    Show the welcome screen")
	fmt.Fprintln(w, "  ls       Print the task list")
	fmt.Fprintln(w, "  doctor   Report config and storage health")
	fmt.Fprintln(w, "  version  Show version")
	fmt.Fprintln(w, "  help     Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
