package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brevis-logic/fitch/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutEnvReturnsDefault(t *testing.T) {
	t.Setenv(config.ProfileEnv, "")
	p, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), p)
}

func TestLoadParsesYAMLProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	contents := "budget_cap: 12\ncolor: true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	t.Setenv(config.ProfileEnv, path)
	p, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 12, p.BudgetCap)
	require.NotNil(t, p.Color)
	assert.True(t, *p.Color)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	t.Setenv(config.ProfileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := config.Load()
	assert.Error(t, err)
}
