// Package hcl_adapter provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for file discovery, HCL parsing
// and HCL-to-model translation.
package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/daisytuner/cmake-scripts/internal/config"
	"github.com/daisytuner/cmake-scripts/internal/ctxlog"
	"github.com/daisytuner/cmake-scripts/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers all .hcl files under the given paths and translates their
// package and target blocks into the format-agnostic model. Any block may
// appear in any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}

	hclFiles, err := fsutil.FindConfigFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, pkg := range root.Packages {
			translated, err := l.translatePackage(pkg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Packages = append(model.Packages, translated)
		}
		for _, t := range root.Targets {
			model.Targets = append(model.Targets, l.translateTarget(t))
		}
	}

	logger.Debug("HCL loading complete.", "packages", len(model.Packages), "targets", len(model.Targets))
	return model, nil
}

// translatePackage converts a package block into the agnostic model. The
// `on` attribute must be an object of distro-spec to concrete-name strings;
// entries are emitted in key order so translation is deterministic.
func (l *Loader) translatePackage(b *packageBlock) (*config.PackageMapping, error) {
	val, diags := b.On.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("package %q: invalid 'on' attribute: %w", b.AbstractName, diags)
	}
	if val.IsNull() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return nil, fmt.Errorf("package %q: 'on' must be a map of distro specs to package names", b.AbstractName)
	}

	pairs := val.AsValueMap()
	specs := make([]string, 0, len(pairs))
	for spec := range pairs {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	mapping := &config.PackageMapping{AbstractName: b.AbstractName}
	for _, spec := range specs {
		concrete := pairs[spec]
		if concrete.Type() != cty.String || concrete.IsNull() {
			return nil, fmt.Errorf("package %q: entry for %q must be a string package name", b.AbstractName, spec)
		}
		mapping.Entries = append(mapping.Entries, config.TierEntry{
			DistroSpec:   spec,
			ConcreteName: concrete.AsString(),
		})
	}
	return mapping, nil
}

// translateTarget converts a target block into the agnostic model.
func (l *Loader) translateTarget(b *targetBlock) *config.Target {
	return &config.Target{
		Name:           b.Name,
		InterfaceOnly:  b.Interface,
		RuntimeDeps:    b.RuntimeDeps,
		ToolDeps:       b.ToolDeps,
		Links:          b.Links,
		InterfaceLinks: b.InterfaceLinks,
	}
}
