package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPaths are files or directories holding .hcl and .yaml
	// configuration, searched in order.
	ConfigPaths []string

	// Targets are the root build targets the dependency query starts from.
	Targets []string

	// DistroOverride, when non-empty, bypasses host platform probing.
	// Format: "id" or "id version", e.g. "ubuntu 24.04".
	DistroOverride string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config value.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("at least one configuration path is required")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("at least one root target is required")
	}
	return &cfg, nil
}
