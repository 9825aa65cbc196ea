// Package cli parses the pathgrid command line into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/pathgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pathgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
PathGrid - a pluggable pathfinder host with a longest-path provider.

Usage:
  pathgrid [options] [GRAPH_PATH]

Arguments:
  GRAPH_PATH
    Path to a .hcl graph definition file (node "NAME" { links = [...] } blocks).

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the graph definition file.")
	gFlag := flagSet.String("g", "", "Path to the graph definition file (shorthand).")
	sourceFlag := flagSet.String("source", "", "Name of the source node.")
	destFlag := flagSet.String("destination", "", "Name of the destination node.")
	providerFlag := flagSet.String("provider", "", "Provider registry key (pluginID::Name). Defaults to the sample longest-path provider.")
	maxVisitsFlag := flagSet.Uint64("max-visits", 0, "Optional query budget: maximum node entries. 0 is unbounded.")
	wallClockFlag := flagSet.Duration("wall-clock", 0, "Optional query budget: wall-clock limit. 0 is unbounded.")
	neo4jURIFlag := flagSet.String("neo4j-uri", "", "Bolt endpoint to load the graph from instead of a file.")
	neo4jDatabaseFlag := flagSet.String("neo4j-database", "", "Neo4j database name.")
	neo4jUserFlag := flagSet.String("neo4j-user", "", "Neo4j username. Empty uses no auth.")
	neo4jPasswordFlag := flagSet.String("neo4j-password", "", "Neo4j password.")
	remoteURLFlag := flagSet.String("remote-url", "", "socket.io endpoint for the remote pathfinder provider.")
	remoteTimeoutFlag := flagSet.Duration("remote-timeout", 10*time.Second, "Timeout for remote pathfinder queries.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *graphFlag != "" {
		path = *graphFlag
	} else if *gFlag != "" {
		path = *gFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Graph path determined.", "path", path)

	if path == "" && *neo4jURIFlag == "" {
		slog.Debug("No graph source provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GraphPath:     path,
		Neo4jURI:      *neo4jURIFlag,
		Neo4jDatabase: *neo4jDatabaseFlag,
		Neo4jUser:     *neo4jUserFlag,
		Neo4jPassword: *neo4jPasswordFlag,
		Provider:      *providerFlag,
		Source:        *sourceFlag,
		Destination:   *destFlag,
		RemoteURL:     *remoteURLFlag,
		RemoteTimeout: *remoteTimeoutFlag,
		MaxVisits:     *maxVisitsFlag,
		WallClock:     *wallClockFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
