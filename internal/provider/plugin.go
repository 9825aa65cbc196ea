package provider

import "github.com/vk/pathgrid/internal/settings"

// Module is implemented by the plugin modules compiled into the binary.
// Register is the initialization hook: it is where a plugin offers its
// providers to the host.
type Module interface {
	ID() string
	Register(r *Registry) error
}

// Lifecycle is optionally implemented by modules that need hooks beyond
// registration. The host calls Tick periodically while running and
// Shutdown exactly once on exit.
type Lifecycle interface {
	Tick() error
	Shutdown() error
}

// StateStore is the persistence surface the host probes for. Modules
// without persistent state return status.ErrUnsupported verbatim from
// every method, with no side effects.
type StateStore interface {
	GetState() (*settings.Bundle, error)
	SetState(state *settings.Bundle) error
}

// SettingsAccessor mirrors StateStore for user-facing settings.
type SettingsAccessor interface {
	GetSettings() (*settings.Bundle, error)
	SetSettings(s *settings.Bundle) error
}
