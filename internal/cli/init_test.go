package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
)

// chdirTemp runs the test from a temp directory so Init writes there.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestInit_NonInteractive_WritesConfig(t *testing.T) {
	dir := chdirTemp(t)

	err := Init(InitOptions{NonInteractive: true})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir:")
	assert.Contains(t, string(data), "session_env: AOC_SESSION")
	assert.Contains(t, string(data), "languages:")

	// The written file loads and validates cleanly.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Len(t, cfg.Languages, len(config.DefaultLanguages()))
}

func TestInit_NonInteractive_ConfigExists(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	err := Init(InitOptions{NonInteractive: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_NonInteractive_ForceOverwrite(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale: true\n"), 0o644))

	err := Init(InitOptions{NonInteractive: true, Overwrite: true})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "data_dir:")
}

func TestInitOptions_Defaults(t *testing.T) {
	var opts InitOptions
	assert.False(t, opts.Overwrite)
	assert.False(t, opts.NonInteractive)
}
