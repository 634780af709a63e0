// Package deps exposes the primary query: resolve every abstract dependency
// reachable from a set of root build targets into concrete package names.
package deps

import (
	"context"
	"sort"

	"github.com/daisytuner/cmake-scripts/internal/buildgraph"
	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
	"github.com/daisytuner/cmake-scripts/internal/resolver"
	"github.com/daisytuner/cmake-scripts/internal/walker"
)

// Service composes the graph walker and the resolver into the public entry
// point. It is stateless across queries; each call owns its own worklist,
// visited set and accumulators.
type Service struct {
	graph    buildgraph.Graph
	walker   *walker.Walker
	resolver *resolver.Resolver
}

// NewService creates the dependency service for a graph and resolver.
func NewService(graph buildgraph.Graph, res *resolver.Resolver) *Service {
	return &Service{
		graph:    graph,
		walker:   walker.New(graph),
		resolver: res,
	}
}

// PackageDependencies collects every abstract dependency reachable from the
// given roots and resolves each into a concrete package name. The returned
// list is deduplicated and sorted, so output is deterministic for a given
// input. Any unknown root or unresolved abstract name aborts the whole call;
// partial results are never returned.
func (s *Service) PackageDependencies(ctx context.Context, roots []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	for _, root := range roots {
		if !s.graph.NodeExists(root) {
			return nil, &UnknownTargetError{ID: root}
		}
	}

	// One visited set across all roots: a target reachable from two roots is
	// still expanded only once.
	visited := make(map[string]struct{})
	result := s.walker.Walk(ctx, roots, visited)

	abstract := make([]string, 0, len(result.Runtime)+len(result.Tool))
	for name := range result.Names() {
		abstract = append(abstract, name)
	}
	sort.Strings(abstract)
	logger.Debug("Collected abstract dependencies.", "roots", len(roots), "targets", len(visited), "abstract", len(abstract))

	// Two abstract names may legitimately resolve to the same concrete
	// package, so the concrete list is deduplicated again.
	concrete := make(map[string]struct{}, len(abstract))
	for _, name := range abstract {
		pkg, err := s.resolver.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		concrete[pkg] = struct{}{}
	}

	packages := make([]string, 0, len(concrete))
	for pkg := range concrete {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages, nil
}
