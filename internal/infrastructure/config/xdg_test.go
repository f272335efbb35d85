package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_FromEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/x/config")
	t.Setenv("XDG_DATA_HOME", "/x/data")
	t.Setenv("XDG_STATE_HOME", "/x/state")
	t.Setenv("XDG_CACHE_HOME", "/x/cache")

	dirs, err := GetXDGDirs()

	require.NoError(t, err)
	assert.Equal(t, "/x/config/ghostedit", dirs.ConfigHome)
	assert.Equal(t, "/x/data/ghostedit", dirs.DataHome)
	assert.Equal(t, "/x/state/ghostedit", dirs.StateHome)
	assert.Equal(t, "/x/cache/ghostedit", dirs.CacheHome)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/x/state/ghostedit/logs", logDir)

	db, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, "/x/data/ghostedit/ghostedit.sqlite", db)
}

func TestGetXDGDirs_Fallback(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	dirs, err := GetXDGDirs()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "ghostedit"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join("/home/tester", ".local", "share", "ghostedit"), dirs.DataHome)
}

func TestGhosttyConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("APPDATA", `/appdata`)

	linux, err := GhosttyConfigPath("linux")
	require.NoError(t, err)
	assert.Equal(t, "/xdg/ghostty/config", linux)

	mac, err := GhosttyConfigPath("darwin")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.config/ghostty/config", mac)

	win, err := GhosttyConfigPath("windows")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/appdata", "ghostty", "config"), win)

	t.Setenv("APPDATA", "")
	_, err = GhosttyConfigPath("windows")
	assert.Error(t, err)
}
