package deps

import "fmt"

// UnknownTargetError reports a dependency query rooted at a target id that
// does not exist in the build graph.
type UnknownTargetError struct {
	ID string
}

// Error implements the error interface.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown build target %q", e.ID)
}
