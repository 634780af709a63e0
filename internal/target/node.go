// Package target defines the build-graph node model: the dependency
// annotations and edge lists the dependency walker reads.
package target

// Kind classifies an abstract dependency. It does not affect resolution,
// only how collected names are grouped.
type Kind int

const (
	// KindRuntime marks a dependency required by the built artifact.
	KindRuntime Kind = iota
	// KindTool marks a dependency required to perform the build itself.
	KindTool
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRuntime:
		return "runtime"
	case KindTool:
		return "tool"
	default:
		return "unknown"
	}
}

// Node is a single build-graph target. Edge lists reference other targets by
// name; values that do not name an existing target (external libraries,
// generator expressions) are expected noise and are skipped by the walker.
type Node struct {
	ID string

	// InterfaceOnly marks a pure dependency umbrella, such as a header-only
	// library, with no link footprint of its own. Its direct links are not
	// consumed by the target itself and must not be followed.
	InterfaceOnly bool

	RuntimeDeps []string
	ToolDeps    []string

	DirectLinks    []string
	InterfaceLinks []string
}

// AddRuntimeDependency annotates the node with an abstract runtime dependency.
func (n *Node) AddRuntimeDependency(abstractName string) {
	n.RuntimeDeps = append(n.RuntimeDeps, abstractName)
}

// AddToolDependency annotates the node with an abstract tool dependency.
func (n *Node) AddToolDependency(abstractName string) {
	n.ToolDeps = append(n.ToolDeps, abstractName)
}

// AddDependency annotates the node under the given kind.
func (n *Node) AddDependency(kind Kind, abstractName string) {
	if kind == KindTool {
		n.AddToolDependency(abstractName)
		return
	}
	n.AddRuntimeDependency(abstractName)
}

// OutgoingLinks returns the edge values a traversal must consider from this
// node: interface links always, direct links only for non-interface targets.
func (n *Node) OutgoingLinks() []string {
	links := make([]string, 0, len(n.InterfaceLinks)+len(n.DirectLinks))
	links = append(links, n.InterfaceLinks...)
	if !n.InterfaceOnly {
		links = append(links, n.DirectLinks...)
	}
	return links
}
