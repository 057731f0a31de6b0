package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/graphprune/internal/ctxlog"
	"github.com/vk/graphprune/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// New is the constructor for the main application. Results are written to
// outW and logs to logW. When no modules are given the core formats are
// installed.
func New(outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All format modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	if _, err := reg.Writer(cfg.OutputFormat); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
