// Package resolver maps abstract dependency names to concrete package names
// using a tiered fallback lookup keyed on the active distribution identity.
package resolver

import (
	"context"
	"strings"

	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
	"github.com/daisytuner/cmake-scripts/internal/mapping"
	"github.com/daisytuner/cmake-scripts/internal/platform"
)

// Resolver answers concrete-name lookups against a sealed mapping snapshot
// and a fixed platform identity. It holds no mutable state and is safe to
// reuse across queries.
type Resolver struct {
	snapshot *mapping.Snapshot
	identity platform.Identity
}

// New creates a resolver over the given mapping snapshot and identity.
func New(snapshot *mapping.Snapshot, identity platform.Identity) *Resolver {
	return &Resolver{snapshot: snapshot, identity: identity}
}

// Identity returns the platform identity the resolver was built with.
func (r *Resolver) Identity() platform.Identity {
	return r.identity
}

// Resolve returns the concrete package name for an abstract dependency name.
// The tier search order is, first hit wins:
//
//  1. "{id}-{version}" — exact identifier and version.
//  2. "{id}-{major}"   — major version prefix, only when the version
//     contains a dot, so a "rhel-10" rule matches host version "10.1".
//  3. "{id}"           — identifier only, any version.
//  4. "generic"        — platform-agnostic fallback.
//
// A miss in all four tiers is fatal for the surrounding query: a missing
// concrete name would silently produce an incomplete dependency list.
func (r *Resolver) Resolve(ctx context.Context, abstractName string) (string, error) {
	tiers := r.tierKeys()
	for _, tier := range tiers {
		if concrete, ok := r.snapshot.Lookup(tier, abstractName); ok {
			ctxlog.FromContext(ctx).Debug("Resolved abstract dependency.",
				"abstract", abstractName, "tier", tier, "concrete", concrete)
			return concrete, nil
		}
	}
	return "", &UnresolvedError{
		AbstractName:  abstractName,
		DistroID:      r.identity.ID,
		DistroVersion: r.identity.Version,
		TriedTiers:    tiers,
	}
}

// tierKeys builds the ordered list of tier keys for the active identity.
func (r *Resolver) tierKeys() []string {
	id := r.identity
	keys := make([]string, 0, 4)
	if id.Version != "" {
		keys = append(keys, id.ID+"-"+id.Version)
	}
	if major, _, found := strings.Cut(id.Version, "."); found {
		keys = append(keys, id.ID+"-"+major)
	}
	return append(keys, id.ID, "generic")
}
