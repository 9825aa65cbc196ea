// Package longestpath is the sample pathfinder plugin. It registers a
// provider that answers queries with the longest simple path between
// two named nodes, found by depth-first backtracking.
package longestpath

import (
	"context"
	"fmt"

	"github.com/vk/pathgrid/internal/ctxlog"
	"github.com/vk/pathgrid/internal/provider"
	"github.com/vk/pathgrid/internal/route"
	"github.com/vk/pathgrid/internal/search"
	"github.com/vk/pathgrid/internal/settings"
	"github.com/vk/pathgrid/internal/status"
)

// PluginID and ProviderName are how this provider shows up in the
// host's registry: "sample-longest::LongestPath".
const (
	PluginID     = "sample-longest"
	ProviderName = "LongestPath"
)

// Module implements provider.Module for this package.
type Module struct {
	// Budget optionally bounds each query. The zero value keeps the
	// engine's historical unbounded behavior.
	Budget search.Budget
}

// ID returns the plugin identifier.
func (m *Module) ID() string { return PluginID }

// Register offers the longest-path provider to the host.
func (m *Module) Register(r *provider.Registry) error {
	return r.RegisterPathfinder(PluginID, ProviderName, m.Search)
}

// Search is the provider entry point. It validates the inputs, extracts
// the graph payload from the settings bundle, runs the backtracking
// engine, and serializes the winning route into the result bundle. Any
// validation failure returns before a result bundle exists, so failed
// queries never emit partial output.
func (m *Module) Search(ctx context.Context, graphSettings *settings.Bundle, src, dst string) (*settings.Bundle, error) {
	if graphSettings == nil || src == "" || dst == "" {
		return nil, fmt.Errorf("pathfind query: %w", status.ErrBadArgument)
	}
	g, ok := settings.GraphFromBundle(graphSettings)
	if !ok {
		return nil, fmt.Errorf("pathfind query: no usable %q entry: %w", settings.GraphKey, status.ErrBadArgument)
	}

	logger := ctxlog.FromContext(ctx).With("provider", ProviderName, "source", src, "destination", dst)
	logger.Debug("Pathfind query started.", "nodes", g.Len())

	engine := search.New(g, search.WithBudget(m.Budget))
	names, err := engine.FindRoute(src, dst)
	if err != nil {
		return nil, err
	}

	logger.Debug("Pathfind query finished.", "route_length", len(names))
	return route.Record(names), nil
}

// Tick and Shutdown are no-op lifecycle hooks.
func (m *Module) Tick() error     { return nil }
func (m *Module) Shutdown() error { return nil }

// This plugin keeps no persistent state or user settings; the whole
// persistence surface is unsupported, with no side effects.
func (m *Module) GetState() (*settings.Bundle, error)    { return nil, status.ErrUnsupported }
func (m *Module) SetState(*settings.Bundle) error        { return status.ErrUnsupported }
func (m *Module) GetSettings() (*settings.Bundle, error) { return nil, status.ErrUnsupported }
func (m *Module) SetSettings(*settings.Bundle) error     { return status.ErrUnsupported }
