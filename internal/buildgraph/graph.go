// Package buildgraph provides read access to the build-target graph behind an
// explicit interface, decoupling the dependency walker from any particular
// graph representation.
package buildgraph

import (
	"sort"

	"github.com/daisytuner/cmake-scripts/internal/target"
)

// Graph is the read surface the dependency walker and service need. Edge
// existence checks go through NodeExists so dangling references can be
// skipped without the walker knowing how targets are stored.
type Graph interface {
	// NodeExists reports whether a target with the given id is in the graph.
	NodeExists(id string) bool

	// Node retrieves a target by id, with an existence flag.
	Node(id string) (*target.Node, bool)

	// NodeIDs returns the ids of all targets, sorted.
	NodeIDs() []string
}

// Memory is the in-memory Graph implementation.
type Memory struct {
	nodes map[string]*target.Node
}

// NewMemory creates an empty in-memory graph.
func NewMemory() *Memory {
	return &Memory{
		nodes: make(map[string]*target.Node),
	}
}

// Add inserts a target into the graph, replacing any previous target with
// the same id.
func (m *Memory) Add(n *target.Node) {
	m.nodes[n.ID] = n
}

// NodeExists reports whether a target with the given id is in the graph.
func (m *Memory) NodeExists(id string) bool {
	_, ok := m.nodes[id]
	return ok
}

// Node retrieves a target by id.
func (m *Memory) Node(id string) (*target.Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// NodeIDs returns the ids of all targets, sorted.
func (m *Memory) NodeIDs() []string {
	ids := make([]string, 0, len(m.nodes))
	for id := range m.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
