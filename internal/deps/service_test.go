package deps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisytuner/cmake-scripts/internal/buildgraph"
	"github.com/daisytuner/cmake-scripts/internal/mapping"
	"github.com/daisytuner/cmake-scripts/internal/platform"
	"github.com/daisytuner/cmake-scripts/internal/resolver"
	"github.com/daisytuner/cmake-scripts/internal/target"
)

func newService(t *testing.T, identity platform.Identity, register func(reg *mapping.Registry), nodes ...*target.Node) *Service {
	t.Helper()
	reg := mapping.New()
	register(reg)
	g := buildgraph.NewMemory()
	for _, n := range nodes {
		g.Add(n)
	}
	return NewService(g, resolver.New(reg.Snapshot(), identity))
}

// registerBoost seeds the mapping used by the end-to-end scenario: a concrete
// name for ubuntu 24.04 and rhel 10, and deliberately no generic fallback.
func registerBoost(t *testing.T) func(reg *mapping.Registry) {
	return func(reg *mapping.Registry) {
		require.NoError(t, reg.Register("boost-program-options",
			"ubuntu 24.04", "libboost-program-options1.83.0",
			"rhel 10", "boost-program-options",
		))
	}
}

func TestPackageDependenciesEndToEnd(t *testing.T) {
	nodes := func() []*target.Node {
		return []*target.Node{
			{ID: "root", RuntimeDeps: []string{"boost-program-options"}, DirectLinks: []string{"util"}},
			{ID: "util"},
		}
	}

	t.Run("ubuntu identity picks the ubuntu package", func(t *testing.T) {
		s := newService(t, platform.Identity{ID: "ubuntu", Version: "24.04"}, registerBoost(t), nodes()...)
		packages, err := s.PackageDependencies(context.Background(), []string{"root"})
		require.NoError(t, err)
		assert.Equal(t, []string{"libboost-program-options1.83.0"}, packages)
	})

	t.Run("rhel identity falls back to the major-version tier", func(t *testing.T) {
		s := newService(t, platform.Identity{ID: "rhel", Version: "10.1"}, registerBoost(t), nodes()...)
		packages, err := s.PackageDependencies(context.Background(), []string{"root"})
		require.NoError(t, err)
		assert.Equal(t, []string{"boost-program-options"}, packages)
	})

	t.Run("unmapped identity fails the whole call", func(t *testing.T) {
		s := newService(t, platform.Identity{ID: "fedora", Version: "40"}, registerBoost(t), nodes()...)
		packages, err := s.PackageDependencies(context.Background(), []string{"root"})
		require.Error(t, err)
		assert.Nil(t, packages, "no partial results on failure")

		var unresolved *resolver.UnresolvedError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, "boost-program-options", unresolved.AbstractName)
	})
}

func TestPackageDependenciesUnknownRoot(t *testing.T) {
	s := newService(t, platform.Generic(), func(reg *mapping.Registry) {},
		&target.Node{ID: "root"},
	)

	_, err := s.PackageDependencies(context.Background(), []string{"root", "nonexistent"})
	require.Error(t, err)

	var unknown *UnknownTargetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistent", unknown.ID)
}

func TestPackageDependenciesConcreteDedup(t *testing.T) {
	// Two abstract names resolving to the same concrete package appear once.
	s := newService(t, platform.Identity{ID: "ubuntu", Version: "24.04"},
		func(reg *mapping.Registry) {
			require.NoError(t, reg.Register("boost-headers", "ubuntu", "libboost-all-dev"))
			require.NoError(t, reg.Register("boost-system", "ubuntu", "libboost-all-dev"))
		},
		&target.Node{ID: "root", RuntimeDeps: []string{"boost-headers"}, ToolDeps: []string{"boost-system"}},
	)

	packages, err := s.PackageDependencies(context.Background(), []string{"root"})
	require.NoError(t, err)
	assert.Equal(t, []string{"libboost-all-dev"}, packages)
}

func TestPackageDependenciesMultipleRoots(t *testing.T) {
	// "shared" is reachable from both roots but expanded only once; the
	// output is sorted and deduplicated.
	s := newService(t, platform.Generic(),
		func(reg *mapping.Registry) {
			require.NoError(t, reg.Register("zlib", "generic", "zlib"))
			require.NoError(t, reg.Register("cmake", "generic", "cmake"))
			require.NoError(t, reg.Register("ninja", "generic", "ninja-build"))
		},
		&target.Node{ID: "app", DirectLinks: []string{"shared"}, ToolDeps: []string{"ninja"}},
		&target.Node{ID: "tests", DirectLinks: []string{"shared"}, ToolDeps: []string{"cmake"}},
		&target.Node{ID: "shared", RuntimeDeps: []string{"zlib"}},
	)

	packages, err := s.PackageDependencies(context.Background(), []string{"app", "tests"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cmake", "ninja-build", "zlib"}, packages)
}

func TestPackageDependenciesEmptyGraphContribution(t *testing.T) {
	s := newService(t, platform.Generic(), func(reg *mapping.Registry) {},
		&target.Node{ID: "leaf"},
	)

	packages, err := s.PackageDependencies(context.Background(), []string{"leaf"})
	require.NoError(t, err)
	assert.Empty(t, packages)
}
