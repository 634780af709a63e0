package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// packageBlock represents a `package` block: one abstract dependency name
// and its per-distro concrete names.
//
//	package "boost-program-options" {
//	  on = {
//	    "ubuntu 24.04" = "libboost-program-options1.83.0"
//	    "generic"      = "boost-program-options"
//	  }
//	}
type packageBlock struct {
	AbstractName string         `hcl:"name,label"`
	On           hcl.Expression `hcl:"on"`
}

// targetBlock represents a `target` block: one build-graph target with its
// dependency annotations and edge lists.
//
//	target "core" {
//	  runtime_deps    = ["boost-program-options"]
//	  tool_deps       = ["cmake"]
//	  links           = ["util", "$<TARGET_OBJECTS:impl>"]
//	  interface_links = ["headers"]
//	}
type targetBlock struct {
	Name           string   `hcl:"name,label"`
	Interface      bool     `hcl:"interface,optional"`
	RuntimeDeps    []string `hcl:"runtime_deps,optional"`
	ToolDeps       []string `hcl:"tool_deps,optional"`
	Links          []string `hcl:"links,optional"`
	InterfaceLinks []string `hcl:"interface_links,optional"`
}

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Packages []*packageBlock `hcl:"package,block"`
	Targets  []*targetBlock  `hcl:"target,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
