package app

import (
	"errors"
	"time"
)

// Config holds everything an App needs to answer one pathfinding query.
type Config struct {
	GraphPath string // HCL graph definition file

	// Bolt-backed graph source, set instead of GraphPath.
	Neo4jURI      string
	Neo4jDatabase string
	Neo4jUser     string
	Neo4jPassword string

	Provider    string // registry key, "pluginID::Name"; empty selects the sample provider
	Source      string
	Destination string

	// Remote provider wiring. The remote module is only compiled into
	// the registry when RemoteURL is set.
	RemoteURL     string
	RemoteTimeout time.Duration

	// Opt-in query budget; zero values keep the engine unbounded.
	MaxVisits uint64
	WallClock time.Duration

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" && cfg.Neo4jURI == "" {
		return nil, errors.New("a graph source is required: set a graph file path or a neo4j URI")
	}
	if cfg.GraphPath != "" && cfg.Neo4jURI != "" {
		return nil, errors.New("graph file path and neo4j URI are mutually exclusive")
	}
	if cfg.Source == "" || cfg.Destination == "" {
		return nil, errors.New("source and destination node names are required")
	}
	return &cfg, nil
}
