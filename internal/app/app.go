package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/daisytuner/cmake-scripts/internal/buildgraph"
	"github.com/daisytuner/cmake-scripts/internal/config"
	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
	"github.com/daisytuner/cmake-scripts/internal/deps"
	"github.com/daisytuner/cmake-scripts/internal/mapping"
	"github.com/daisytuner/cmake-scripts/internal/platform"
	"github.com/daisytuner/cmake-scripts/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	identity platform.Identity
	service  *deps.Service
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger: the configuration is
// loaded and merged, every package mapping is registered, the platform
// identity is fixed, and the build graph is constructed. Results are written
// to outW; logs go to logW. A failure to load or register configuration is a
// fatal startup error and panics; callers recover at the entry point.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		panic(fmt.Errorf("at least one configuration loader is required"))
	}

	// Load all formats into the unified model; later loaders layer on top.
	model := &config.Model{}
	for _, loader := range loaders {
		loaded, err := loader.Load(ctx, appConfig.ConfigPaths...)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		model.Merge(loaded)
	}
	logger.Debug("Configuration loaded and translated into unified model.",
		"packages", len(model.Packages), "targets", len(model.Targets))

	// Register every mapping, then seal the registry before any resolution.
	registry := mapping.New()
	for _, pkg := range model.Packages {
		pairs := make([]string, 0, len(pkg.Entries)*2)
		for _, entry := range pkg.Entries {
			pairs = append(pairs, entry.DistroSpec, entry.ConcreteName)
		}
		if err := registry.Register(pkg.AbstractName, pairs...); err != nil {
			panic(fmt.Errorf("failed to register package mappings: %w", err))
		}
	}
	snapshot := registry.Snapshot()
	logger.Debug("Package mapping registry populated.", "entries", snapshot.Len())

	identity := resolveIdentity(ctx, appConfig.DistroOverride)
	logger.Info("Active platform identity.", "distro", identity.String())

	graph := buildgraph.Build(ctx, model)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		identity: identity,
		service:  deps.NewService(graph, resolver.New(snapshot, identity)),
	}
}

// resolveIdentity applies the override when present, otherwise probes the host.
func resolveIdentity(ctx context.Context, override string) platform.Identity {
	if override == "" {
		return platform.Detect(ctx)
	}
	identity, err := platform.ParseOverride(override)
	if err != nil {
		panic(err)
	}
	return identity
}

// Identity returns the active platform identity. This is primarily for testing.
func (a *App) Identity() platform.Identity {
	return a.identity
}

// Service returns the dependency service. This is primarily for testing.
func (a *App) Service() *deps.Service {
	return a.service
}
