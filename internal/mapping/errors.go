package mapping

import "fmt"

// MalformedMappingError reports a registration call whose tier/name pair
// arguments had odd cardinality. It is raised at registration time, never
// deferred to resolution.
type MalformedMappingError struct {
	AbstractName string
	ArgCount     int
}

// Error implements the error interface.
func (e *MalformedMappingError) Error() string {
	return fmt.Sprintf("malformed mapping for %q: expected (distro, package) pairs, got %d arguments", e.AbstractName, e.ArgCount)
}
