package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vincent-oy/GrocerEase/internal/app"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	for _, key := range []string{"GROCEREASE_DB", "GROCEREASE_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.db")
	t.Setenv("GROCEREASE_DB", path)
	t.Setenv("GROCEREASE_LOG_LEVEL", "debug")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, path, cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestDefaultDBPathIsInWorkingDir(t *testing.T) {
	t.Parallel()

	path, err := app.DefaultDBPath()
	require.NoError(t, err)
	require.Equal(t, "inventory.db", filepath.Base(path))
	require.True(t, filepath.IsAbs(path))
}
