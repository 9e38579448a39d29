package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestShort(t *testing.T) {
	stamp(t, "dev", "unknown", "unknown")
	require.Equal(t, "dev", Short())
	require.Equal(t, "dev", Long())

	stamp(t, "dev", "0123456789abcdef", "unknown")
	require.Equal(t, "0123456", Short())

	stamp(t, "v1.2.0", "0123456789abcdef", "2026-10-19")
	require.Equal(t, "v1.2.0", Short())
	require.Equal(t, "v1.2.0 built 2026-10-19", Long())
}
