package buildgraph

import (
	"context"

	"github.com/daisytuner/cmake-scripts/internal/config"
	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
	"github.com/daisytuner/cmake-scripts/internal/target"
)

// Build translates the target blocks of a config model into an in-memory
// graph. A duplicate target definition overwrites the previous one and is
// logged at warn level.
func Build(ctx context.Context, model *config.Model) *Memory {
	logger := ctxlog.FromContext(ctx)
	graph := NewMemory()

	for _, t := range model.Targets {
		if graph.NodeExists(t.Name) {
			logger.Warn("Duplicate target definition found, it will be overwritten.", "target", t.Name)
		}
		graph.Add(&target.Node{
			ID:             t.Name,
			InterfaceOnly:  t.InterfaceOnly,
			RuntimeDeps:    t.RuntimeDeps,
			ToolDeps:       t.ToolDeps,
			DirectLinks:    t.Links,
			InterfaceLinks: t.InterfaceLinks,
		})
	}

	logger.Debug("Build graph constructed.", "targets", len(graph.nodes))
	return graph
}
