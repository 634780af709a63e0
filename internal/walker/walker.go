// Package walker performs the breadth-first traversal that collects every
// abstract dependency reachable from a set of root build targets.
package walker

import (
	"context"
	"regexp"

	"github.com/daisytuner/cmake-scripts/internal/buildgraph"
	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
)

// identifierPattern matches plain target identifiers. Edge values that do not
// match, such as generator-expression placeholders, are not graph references.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_:-]+$`)

// Result accumulates the abstract dependency names collected during a walk,
// grouped by kind.
type Result struct {
	Runtime map[string]struct{}
	Tool    map[string]struct{}
}

// NewResult creates an empty accumulator.
func NewResult() *Result {
	return &Result{
		Runtime: make(map[string]struct{}),
		Tool:    make(map[string]struct{}),
	}
}

// Names returns the union of runtime and tool names.
func (r *Result) Names() map[string]struct{} {
	union := make(map[string]struct{}, len(r.Runtime)+len(r.Tool))
	for name := range r.Runtime {
		union[name] = struct{}{}
	}
	for name := range r.Tool {
		union[name] = struct{}{}
	}
	return union
}

// Walker traverses a build graph breadth-first.
type Walker struct {
	graph buildgraph.Graph
}

// New creates a walker over the given graph.
func New(graph buildgraph.Graph) *Walker {
	return &Walker{graph: graph}
}

// Walk traverses the graph from the given roots using a FIFO worklist,
// collecting each expanded node's dependency annotations into result. The
// visited set guards against re-expansion, so diamond dependencies collapse
// and cyclic graphs terminate. Passing the same visited set across calls
// extends the revisit protection across multiple root sets; nil creates a
// fresh set.
//
// Edge values are followed only when they are syntactically plain
// identifiers and name an existing target. Everything else — generator
// expressions, external libraries, dangling references — is skipped
// silently; such values are expected noise, not errors.
func (w *Walker) Walk(ctx context.Context, roots []string, visited map[string]struct{}) *Result {
	logger := ctxlog.FromContext(ctx)
	if visited == nil {
		visited = make(map[string]struct{})
	}

	result := NewResult()
	worklist := append([]string(nil), roots...)

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}

		node, ok := w.graph.Node(id)
		if !ok {
			continue
		}

		for _, name := range node.RuntimeDeps {
			result.Runtime[name] = struct{}{}
		}
		for _, name := range node.ToolDeps {
			result.Tool[name] = struct{}{}
		}

		for _, link := range node.OutgoingLinks() {
			if !identifierPattern.MatchString(link) {
				logger.Debug("Skipping non-identifier link value.", "target", id, "link", link)
				continue
			}
			if !w.graph.NodeExists(link) {
				logger.Debug("Skipping link to unknown target.", "target", id, "link", link)
				continue
			}
			worklist = append(worklist, link)
		}
	}

	return result
}
