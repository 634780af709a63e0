// Package yaml_adapter provides the YAML implementation of the config.Loader
// interface, used for mapping-overlay files layered on top of the HCL
// configuration.
package yaml_adapter

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/daisytuner/cmake-scripts/internal/config"
	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
	"github.com/daisytuner/cmake-scripts/internal/fsutil"
)

// fileRoot is the top-level structure of a YAML configuration file.
//
//	packages:
//	  fmt:
//	    "ubuntu 24.04": libfmt-dev
//	    generic: fmt
//	targets:
//	  headers:
//	    interface: true
//	    interface_links: [core]
type fileRoot struct {
	Packages map[string]map[string]string `yaml:"packages"`
	Targets  map[string]targetSpec        `yaml:"targets"`
}

// targetSpec mirrors the HCL target block attributes.
type targetSpec struct {
	Interface      bool     `yaml:"interface"`
	RuntimeDeps    []string `yaml:"runtime_deps"`
	ToolDeps       []string `yaml:"tool_deps"`
	Links          []string `yaml:"links"`
	InterfaceLinks []string `yaml:"interface_links"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers all .yaml and .yml files under the given paths and
// translates them into the format-agnostic model. YAML mappings are
// unordered, so packages and targets are emitted in sorted key order to keep
// translation deterministic.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := &config.Model{}

	yamlFiles, err := fsutil.FindConfigFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(yamlFiles))

	for _, file := range yamlFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		model.Merge(translate(&root))
	}

	logger.Debug("YAML loading complete.", "packages", len(model.Packages), "targets", len(model.Targets))
	return model, nil
}

// translate converts one decoded file into the agnostic model.
func translate(root *fileRoot) *config.Model {
	model := &config.Model{}

	for _, name := range sortedKeys(root.Packages) {
		entries := root.Packages[name]
		pkg := &config.PackageMapping{AbstractName: name}
		for _, spec := range sortedKeys(entries) {
			pkg.Entries = append(pkg.Entries, config.TierEntry{
				DistroSpec:   spec,
				ConcreteName: entries[spec],
			})
		}
		model.Packages = append(model.Packages, pkg)
	}

	for _, name := range sortedKeys(root.Targets) {
		spec := root.Targets[name]
		model.Targets = append(model.Targets, &config.Target{
			Name:           name,
			InterfaceOnly:  spec.Interface,
			RuntimeDeps:    spec.RuntimeDeps,
			ToolDeps:       spec.ToolDeps,
			Links:          spec.Links,
			InterfaceLinks: spec.InterfaceLinks,
		})
	}

	return model
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
