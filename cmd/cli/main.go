package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/pathgrid/internal/app"
	"github.com/vk/pathgrid/internal/cli"
	"github.com/vk/pathgrid/internal/status"
)

// main is the entrypoint for the pathgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errW, "A critical startup error occurred: %v\n", r)
			os.Exit(1)
		}
	}()

	host := app.NewApp(outW, errW, appConfig)
	return host.Run(context.Background(), appConfig)
}

// exitCode maps boundary status codes to process exit codes.
func exitCode(err error) int {
	code, ok := status.CodeOf(err)
	if !ok {
		return 1
	}
	switch code {
	case status.BadArgument:
		return 2
	case status.NoMemory:
		return 3
	case status.Unsupported:
		return 4
	}
	return 1
}
