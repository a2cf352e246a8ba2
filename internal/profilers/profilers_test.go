package profilers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	stop, err := Setup()
	require.NoError(t, err)
	require.NoError(t, stop())

	dir := t.TempDir()
	*flagCPUProfile = filepath.Join(dir, "cpu.prof")
	*flagMemProfile = filepath.Join(dir, "mem.prof")
	defer func() { *flagCPUProfile, *flagMemProfile = "", "" }()
	stop, err = Setup()
	require.NoError(t, err)
	require.NoError(t, stop())
	for _, path := range []string{*flagCPUProfile, *flagMemProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
