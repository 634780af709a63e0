package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("registers pairs under normalized tiers", func(t *testing.T) {
		reg := New()
		err := reg.Register("boost-program-options",
			"Ubuntu 24.04", "libboost-program-options1.83.0",
			"generic", "boost-program-options",
		)
		require.NoError(t, err)

		snap := reg.Snapshot()
		concrete, ok := snap.Lookup("ubuntu-24.04", "boost-program-options")
		require.True(t, ok)
		assert.Equal(t, "libboost-program-options1.83.0", concrete)

		concrete, ok = snap.Lookup("generic", "boost-program-options")
		require.True(t, ok)
		assert.Equal(t, "boost-program-options", concrete)
	})

	t.Run("odd argument count is rejected immediately", func(t *testing.T) {
		reg := New()
		err := reg.Register("llvm-19", "ubuntu 24.04", "llvm-19-dev", "generic")
		require.Error(t, err)

		var malformed *MalformedMappingError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "llvm-19", malformed.AbstractName)
		assert.Equal(t, 3, malformed.ArgCount)

		// Nothing from the malformed call may leak into the table.
		assert.Equal(t, 0, reg.Snapshot().Len())
	})

	t.Run("trailing whitespace normalizes to the same tier", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.Register("fmt", "ubuntu", "libfmt-dev"))
		require.NoError(t, reg.Register("fmt", "ubuntu ", "libfmt9"))

		snap := reg.Snapshot()
		assert.Equal(t, 1, snap.Len())
		concrete, ok := snap.Lookup("ubuntu", "fmt")
		require.True(t, ok)
		assert.Equal(t, "libfmt9", concrete, "last registration wins")
	})

	t.Run("abstract name is case-sensitive", func(t *testing.T) {
		reg := New()
		require.NoError(t, reg.Register("Fmt", "generic", "libfmt-dev"))

		_, ok := reg.Snapshot().Lookup("generic", "fmt")
		assert.False(t, ok)
	})
}

func TestSnapshotIsolation(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("zlib", "generic", "zlib"))

	snap := reg.Snapshot()
	require.NoError(t, reg.Register("zlib", "generic", "zlib1g-dev"))

	concrete, ok := snap.Lookup("generic", "zlib")
	require.True(t, ok)
	assert.Equal(t, "zlib", concrete, "snapshot must not observe later registrations")

	concrete, ok = reg.Snapshot().Lookup("generic", "zlib")
	require.True(t, ok)
	assert.Equal(t, "zlib1g-dev", concrete)
}

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"ubuntu 24.04", "ubuntu-24.04"},
		{"Ubuntu 24.04", "ubuntu-24.04"},
		{"  rhel   10  ", "rhel-10"},
		{"generic", "generic"},
		{"ubuntu ", "ubuntu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTier(tt.spec), "spec %q", tt.spec)
	}
}
