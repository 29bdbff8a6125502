package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_DiscardsWithoutEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.NoError(t, Close())

	l := Logger()
	require.NotNil(t, l)
	assert.Same(t, l, Logger(), "logger should be cached")

	require.NoError(t, Close())
}

func TestLogger_WritesToEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	t.Setenv(EnvVar, path)
	require.NoError(t, Close())
	t.Cleanup(func() { Close() })

	Logger().Debug("installed", "id", "::view::layout::12::top")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "installed")
	assert.Contains(t, string(data), "::view::layout::12::top")
}

func TestInit_ReplacesFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.log")
	second := filepath.Join(dir, "b.log")
	t.Cleanup(func() { Close() })

	require.NoError(t, Init(first))
	require.NoError(t, Init(second))
	Logger().Warn("dropped")

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dropped")

	data, err = os.ReadFile(first)
	require.NoError(t, err)
	assert.Empty(t, data)
}
