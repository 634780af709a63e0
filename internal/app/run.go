package app

import (
	"context"
	"fmt"

	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
)

// Run executes the dependency query for the configured root targets and
// writes one concrete package name per line to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	a.logger.Debug("Starting package dependency query.", "targets", a.config.Targets)
	packages, err := a.service.PackageDependencies(ctx, a.config.Targets)
	if err != nil {
		return err
	}

	a.logger.Info("Package dependency query finished.", "packages", len(packages))
	for _, pkg := range packages {
		fmt.Fprintln(a.outW, pkg)
	}
	return nil
}
