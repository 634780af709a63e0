package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/daisytuner/cmake-scripts/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("pkgdep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pkgdep - resolves the abstract dependencies of build targets into concrete,
distro-specific package names.

Usage:
  pkgdep [options] TARGET...

Arguments:
  TARGET
    One or more root build targets to collect dependencies from.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Comma-separated list of .hcl/.yaml files or directories.")
	cFlag := flagSet.String("c", "", "Comma-separated list of .hcl/.yaml files or directories (shorthand).")
	distroFlag := flagSet.String("distro", "", "Platform identity override, e.g. \"ubuntu 24.04\". Bypasses host probing.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	if configPath == "" && flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if configPath == "" {
		return nil, false, &ExitError{Code: 2, Message: "missing -config: a configuration path is required"}
	}
	if flagSet.NArg() == 0 {
		return nil, false, &ExitError{Code: 2, Message: "at least one root target argument is required"}
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

	config, err := app.NewConfig(app.Config{
		ConfigPaths:    splitPaths(configPath),
		Targets:        flagSet.Args(),
		DistroOverride: *distroFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// splitPaths splits a comma-separated path list, dropping empty elements.
func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
