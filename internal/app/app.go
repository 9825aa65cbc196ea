package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/pathgrid/internal/provider"
)

// App encapsulates the host: its logger, the provider registry, and the
// plugin modules compiled into the binary.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *provider.Registry
	modules  []provider.Module
}

// NewApp is the constructor for the host application. It returns a fully
// initialized App with an isolated logger and a registry populated by
// every module's Register hook. Results go to outW, logs to errW.
func NewApp(outW, errW io.Writer, cfg *Config, modules ...provider.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	reg := provider.New()
	if len(modules) == 0 {
		modules = coreModules(cfg)
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			// A module rejecting registration is a programmer error, so we panic.
			panic(fmt.Errorf("failed to register module %q: %w", mod.ID(), err))
		}
	}
	logger.Debug("All plugin modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		modules:  modules,
	}
}

// Registry returns the host's provider registry. This is primarily for
// testing.
func (a *App) Registry() *provider.Registry {
	return a.registry
}
