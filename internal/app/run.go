package app

import (
	"context"
	"fmt"

	"github.com/vk/pathgrid/internal/ctxlog"
	"github.com/vk/pathgrid/internal/loader"
	"github.com/vk/pathgrid/internal/provider"
	"github.com/vk/pathgrid/internal/route"
	"github.com/vk/pathgrid/internal/settings"
	"github.com/vk/pathgrid/internal/status"
	"github.com/vk/pathgrid/modules/longestpath"
)

// Run loads the configured graph, executes the pathfinding query through
// the selected provider, and writes the route text to the output writer.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer a.shutdownModules()

	g, err := a.graphSource(cfg).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	a.logger.Info("Graph loaded.", "nodes", g.Len())

	bundle := settings.New()
	bundle.Append(settings.GraphKey, settings.GraphVal(g))

	key := cfg.Provider
	if key == "" {
		key = provider.Info{PluginID: longestpath.PluginID, Name: longestpath.ProviderName}.Key()
	}
	find, ok := a.registry.Resolve(key)
	if !ok {
		return fmt.Errorf("no pathfinder registered under %q: %w", key, status.ErrBadArgument)
	}

	a.logger.Info("Running pathfind query.", "provider", key, "source", cfg.Source, "destination", cfg.Destination)
	result, err := find(ctx, bundle, cfg.Source, cfg.Destination)
	if err != nil {
		return fmt.Errorf("pathfind query failed: %w", err)
	}

	text, ok := result.GetString(route.Key)
	if !ok {
		// Zero entries means no route connects the endpoints. That is a
		// successful query with nothing to print.
		a.logger.Info("No route found.", "source", cfg.Source, "destination", cfg.Destination)
		return nil
	}

	fmt.Fprintln(a.outW, text)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// graphSource picks the configured graph source.
func (a *App) graphSource(cfg *Config) loader.Source {
	if cfg.Neo4jURI != "" {
		return &loader.Neo4jSource{Options: loader.Neo4jOptions{
			URI:      cfg.Neo4jURI,
			Database: cfg.Neo4jDatabase,
			Username: cfg.Neo4jUser,
			Password: cfg.Neo4jPassword,
		}}
	}
	return &loader.FileSource{Path: cfg.GraphPath}
}

// shutdownModules runs the optional Shutdown hook of every module.
func (a *App) shutdownModules() {
	for _, mod := range a.modules {
		lc, ok := mod.(provider.Lifecycle)
		if !ok {
			continue
		}
		if err := lc.Shutdown(); err != nil {
			a.logger.Warn("Module shutdown failed.", "module", mod.ID(), "error", err)
		}
	}
}
