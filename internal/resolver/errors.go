package resolver

import (
	"fmt"
	"strings"
)

// UnresolvedError reports an abstract dependency name with no mapping entry
// in any fallback tier for the active platform identity. The caller is
// expected to halt the surrounding build and surface the name and identity
// so the mapping database can be fixed.
type UnresolvedError struct {
	AbstractName  string
	DistroID      string
	DistroVersion string
	TriedTiers    []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	identity := e.DistroID
	if e.DistroVersion != "" {
		identity += " " + e.DistroVersion
	}
	return fmt.Sprintf("no package mapping for %q on %s (tried tiers: %s)",
		e.AbstractName, identity, strings.Join(e.TriedTiers, ", "))
}
