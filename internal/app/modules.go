package app

import (
	"github.com/vk/pathgrid/internal/provider"
	"github.com/vk/pathgrid/internal/search"
	"github.com/vk/pathgrid/modules/longestpath"
	"github.com/vk/pathgrid/modules/remotepath"
)

// coreModules is the definitive list of plugin modules compiled into the
// pathgrid binary for a given configuration. The remote provider is only
// offered when an endpoint is configured.
func coreModules(cfg *Config) []provider.Module {
	mods := []provider.Module{
		&longestpath.Module{
			Budget: search.Budget{
				MaxVisits: cfg.MaxVisits,
				WallClock: cfg.WallClock,
			},
		},
	}
	if cfg.RemoteURL != "" {
		mods = append(mods, &remotepath.Module{
			URL:     cfg.RemoteURL,
			Timeout: cfg.RemoteTimeout,
		})
	}
	return mods
}
