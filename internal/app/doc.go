// Package app is the composition root. It wires the configuration loaders,
// the mapping registry, the platform identity and the dependency service into
// a runnable application instance.
package app
