package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates everything
	// it understands into the format-agnostic model, and ignores files of
	// other formats. A path that does not exist is not an error.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
