// Package config defines the unified, format-agnostic model for the package
// mapping database and the build-target graph, plus the Loader interface a
// format-specific adapter must implement to populate it.
package config
