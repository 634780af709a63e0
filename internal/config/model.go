package config

// Model is the unified, format-agnostic representation of the entire
// configuration: every package mapping and every build target, regardless of
// which file format declared them.
type Model struct {
	Packages []*PackageMapping
	Targets  []*Target
}

// PackageMapping is the format-agnostic representation of a `package` block:
// one abstract dependency name and its per-distro concrete names.
type PackageMapping struct {
	AbstractName string
	Entries      []TierEntry
}

// TierEntry is a single (distro tier spec, concrete name) pair. The spec is
// kept in its raw, un-normalized form; the mapping registry owns
// normalization so file-based and programmatic registration behave the same.
type TierEntry struct {
	DistroSpec   string
	ConcreteName string
}

// Target is the format-agnostic representation of a `target` block.
type Target struct {
	Name           string
	InterfaceOnly  bool
	RuntimeDeps    []string
	ToolDeps       []string
	Links          []string
	InterfaceLinks []string
}

// Merge appends the contents of other to the model. Later entries win when
// they collide, so load order defines the override layering.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Packages = append(m.Packages, other.Packages...)
	m.Targets = append(m.Targets, other.Targets...)
}
