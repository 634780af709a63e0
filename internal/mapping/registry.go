package mapping

import (
	"log/slog"
	"strings"
)

// Key identifies a single mapping entry: a normalized distro tier combined
// with the abstract dependency name. The abstract name is case-sensitive as
// registered; only the tier is normalized.
type Key struct {
	Tier string
	Name string
}

// Registry is the process-wide table mapping (tier, abstract name) pairs to
// concrete package names. It is append-only during the setup phase; take a
// Snapshot before the first resolution and read only from that.
type Registry struct {
	entries map[Key]string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		entries: make(map[Key]string),
	}
}

// Register records concrete package names for an abstract dependency name.
// The variadic pairs are (distro tier spec, concrete name) sequences, e.g.
//
//	reg.Register("boost-program-options",
//	    "ubuntu 24.04", "libboost-program-options1.83.0",
//	    "generic", "boost-program-options",
//	)
//
// An odd number of pair arguments is a configuration error and is rejected
// immediately. Re-registering the same (tier, name) pair overwrites the
// previous concrete name; the overwrite is logged at warn level.
func (r *Registry) Register(abstractName string, pairs ...string) error {
	if len(pairs)%2 != 0 {
		return &MalformedMappingError{AbstractName: abstractName, ArgCount: len(pairs)}
	}

	for i := 0; i < len(pairs); i += 2 {
		key := Key{Tier: NormalizeTier(pairs[i]), Name: abstractName}
		concrete := pairs[i+1]
		if previous, exists := r.entries[key]; exists && previous != concrete {
			slog.Warn("Duplicate package mapping, the previous entry will be overwritten.",
				"abstract", abstractName, "tier", key.Tier, "previous", previous, "new", concrete)
		}
		r.entries[key] = concrete
	}
	return nil
}

// Snapshot returns an immutable copy of the registered entries. Registrations
// made after the snapshot is taken do not affect it.
func (r *Registry) Snapshot() *Snapshot {
	entries := make(map[Key]string, len(r.entries))
	for k, v := range r.entries {
		entries[k] = v
	}
	return &Snapshot{entries: entries}
}

// NormalizeTier converts a free-form distro tier spec such as "Ubuntu 24.04"
// into its canonical key form: lower-cased, surrounding whitespace dropped,
// internal runs of whitespace replaced with a single hyphen.
func NormalizeTier(spec string) string {
	return strings.Join(strings.Fields(strings.ToLower(spec)), "-")
}

// Snapshot is a read-only view of a Registry, safe to share with resolvers.
type Snapshot struct {
	entries map[Key]string
}

// Lookup returns the concrete name registered for the given normalized tier
// and abstract name, if any.
func (s *Snapshot) Lookup(tier, abstractName string) (string, bool) {
	concrete, ok := s.entries[Key{Tier: tier, Name: abstractName}]
	return concrete, ok
}

// Len reports the number of distinct (tier, name) entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}
