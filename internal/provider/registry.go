// Package provider is the host-facing registry plugin modules offer
// their pathfinders to. It stores callbacks under "pluginID::name" keys
// so one plugin can ship several providers and a plugin's providers can
// be swept out together when it unloads.
package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/pathgrid/internal/settings"
	"github.com/vk/pathgrid/internal/status"
)

// Pathfinder answers one pathfinding query: a settings bundle carrying
// the graph payload plus the two endpoint names in, a result bundle out.
// The returned bundle is owned by the caller; implementations must not
// retain references into it.
type Pathfinder func(ctx context.Context, graphSettings *settings.Bundle, src, dst string) (*settings.Bundle, error)

// Info identifies a registered pathfinder.
type Info struct {
	PluginID string
	Name     string
}

// Key is the registry key for a provider.
func (i Info) Key() string {
	return i.PluginID + "::" + i.Name
}

type registration struct {
	info Info
	fn   Pathfinder
}

// Registry stores the pathfinder providers registered by plugin modules.
// Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	pathfinders map[string]registration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{pathfinders: make(map[string]registration)}
}

// RegisterPathfinder stores fn under pluginID::name. Empty identifiers,
// a nil callback, or a key collision are bad arguments.
func (r *Registry) RegisterPathfinder(pluginID, name string, fn Pathfinder) error {
	if pluginID == "" || name == "" || fn == nil {
		return fmt.Errorf("register pathfinder %q/%q: %w", pluginID, name, status.ErrBadArgument)
	}
	info := Info{PluginID: pluginID, Name: name}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pathfinders[info.Key()]; exists {
		return fmt.Errorf("register pathfinder %q: already registered: %w", info.Key(), status.ErrBadArgument)
	}
	r.pathfinders[info.Key()] = registration{info: info, fn: fn}
	return nil
}

// Resolve returns the pathfinder registered under key.
func (r *Registry) Resolve(key string) (Pathfinder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.pathfinders[key]
	if !ok {
		return nil, false
	}
	return reg.fn, true
}

// List returns the registered providers sorted by key.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.pathfinders))
	for _, reg := range r.pathfinders {
		infos = append(infos, reg.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key() < infos[j].Key() })
	return infos
}

// UnregisterPlugin removes every provider pluginID registered.
func (r *Registry) UnregisterPlugin(pluginID string) {
	if pluginID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, reg := range r.pathfinders {
		if reg.info.PluginID == pluginID {
			delete(r.pathfinders, key)
		}
	}
}
