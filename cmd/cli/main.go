package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/daisytuner/cmake-scripts/internal/app"
	"github.com/daisytuner/cmake-scripts/internal/cli"
	"github.com/daisytuner/cmake-scripts/internal/hcl_adapter"
	"github.com/daisytuner/cmake-scripts/internal/yaml_adapter"
)

// main is the entrypoint for the pkgdep application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, errW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to turn
	// them into a clean error message for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete loaders; the YAML overlay layers on top of HCL.
	pkgdepApp := app.NewApp(outW, errW, appConfig, hcl_adapter.NewLoader(), yaml_adapter.NewLoader())

	return pkgdepApp.Run(context.Background())
}
