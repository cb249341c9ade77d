// Package cli provides the command-line interface layer for the scaffolder.
// It builds the shared context (settings, UI, filesystem) and bridges cobra
// commands to the scaffold engine.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/zoro11031/mlapp-scaffold/internal/config"
	"github.com/zoro11031/mlapp-scaffold/internal/system"
	"github.com/zoro11031/mlapp-scaffold/internal/ui"
)

// Options carries the global flags shared by every command
type Options struct {
	ConfigPath     string
	NonInteractive bool
	NoColor        bool
	Verbose        bool
	// Output overrides the UI writer, mainly for tests
	Output io.Writer
}

// SetupContext holds all dependencies needed for scaffolding operations
type SetupContext struct {
	Config *config.Config
	UI     *ui.UI
	FS     system.FileSystemManager
}

// NewSetupContext creates a SetupContext with default options
func NewSetupContext() (*SetupContext, error) {
	return NewSetupContextWithOptions(Options{})
}

// NewSetupContextWithOptions creates a new SetupContext with custom options.
// Flags win over settings from the config file.
func NewSetupContextWithOptions(opts Options) (*SetupContext, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	colorMode := cfg.GetOrDefault(config.KeyColor, config.ColorAuto)
	if opts.NoColor {
		colorMode = config.ColorNever
	}
	if err := ui.SetColorMode(colorMode); err != nil {
		return nil, fmt.Errorf("invalid %s setting: %w", config.KeyColor, err)
	}

	var uiInstance *ui.UI
	if opts.Output != nil {
		uiInstance = ui.NewWithWriter(opts.Output)
	} else {
		uiInstance = ui.New()
	}
	uiInstance.SetNonInteractive(opts.NonInteractive || cfg.GetBool(config.KeyNonInteractive) || !stdinIsTerminal())
	uiInstance.SetVerbose(opts.Verbose || cfg.GetBool(config.KeyVerbose))

	return &SetupContext{
		Config: cfg,
		UI:     uiInstance,
		FS:     system.NewFileSystem(),
	}, nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
