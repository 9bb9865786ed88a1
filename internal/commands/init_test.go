package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glrecon-dev/glrecon/internal/config"
)

func TestInit_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, false))

	cfg, err := config.Load(filepath.Join(dir, "glrecon.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"H11", "TAX"}, cfg.GL.TaxSources)
	assert.Equal(t, 5, cfg.Bank.HeaderSkip)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glrecon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gl:\n  tax_sources: [\"H11\"]\n"), 0o644))

	err := runInit(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Existing config untouched.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"H11"}, cfg.GL.TaxSources)
}

func TestInit_Force(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glrecon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gl:\n  tax_sources: [\"H11\"]\n"), 0o644))

	require.NoError(t, runInit(dir, true))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"H11", "TAX"}, cfg.GL.TaxSources)
}

func TestInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "project")
	require.NoError(t, runInit(dir, false))

	_, err := os.Stat(filepath.Join(dir, "glrecon.yaml"))
	assert.NoError(t, err)
}
