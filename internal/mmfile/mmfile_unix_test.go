//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_ReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.bin")
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup(), "second unmap is a no-op")
}

func TestMap_ZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, cleanup)
	require.NoError(t, cleanup())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "absent.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
