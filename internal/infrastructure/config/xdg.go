package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName      = "ghostedit"
	databaseName = "ghostedit.sqlite"
	configName   = "config.toml"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs are ghostedit's own directories under the XDG base directories.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs resolves $XDG_{CONFIG,DATA,STATE,CACHE}_HOME/ghostedit, falling
// back to ~/.config, ~/.local/share, ~/.local/state and ~/.cache. With
// ENV=dev every directory is ./.dev/ghostedit.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: dev, DataHome: dev, StateHome: dev, CacheHome: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	app := func(env string, fallback ...string) string {
		return filepath.Join(xdgHome(env, home, fallback...), appName)
	}
	return &XDGDirs{
		ConfigHome: app("XDG_CONFIG_HOME", ".config"),
		DataHome:   app("XDG_DATA_HOME", ".local", "share"),
		StateHome:  app("XDG_STATE_HOME", ".local", "state"),
		CacheHome:  app("XDG_CACHE_HOME", ".cache"),
	}, nil
}

func xdgHome(env, home string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// under joins elem onto the directory pick selects.
func under(pick func(*XDGDirs) string, elem ...string) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{pick(dirs)}, elem...)...), nil
}

func configHome(d *XDGDirs) string { return d.ConfigHome }
func dataHome(d *XDGDirs) string   { return d.DataHome }
func stateHome(d *XDGDirs) string  { return d.StateHome }

// GetConfigDir returns the directory holding config.toml.
func GetConfigDir() (string, error) { return under(configHome) }

// GetDataDir returns the directory holding the recent-files database.
func GetDataDir() (string, error) { return under(dataHome) }

// GetStateDir returns ghostedit's state directory.
func GetStateDir() (string, error) { return under(stateHome) }

// GetLogDir returns the logs directory inside the state directory.
func GetLogDir() (string, error) { return under(stateHome, "logs") }

// GetConfigFile returns the path to the settings file.
func GetConfigFile() (string, error) { return under(configHome, configName) }

// GetDatabaseFile returns the path to the recent-files database.
func GetDatabaseFile() (string, error) { return under(dataHome, databaseName) }

// GhosttyConfigPath returns where Ghostty reads its config file on goos:
// $XDG_CONFIG_HOME/ghostty/config on Linux, ~/.config/ghostty/config on
// macOS and %APPDATA%\ghostty\config on Windows.
func GhosttyConfigPath(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch goos {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA is not set")
		}
		return filepath.Join(appData, "ghostty", "config"), nil
	case "darwin":
		return filepath.Join(home, ".config", "ghostty", "config"), nil
	default:
		return filepath.Join(xdgHome("XDG_CONFIG_HOME", home, ".config"), "ghostty", "config"), nil
	}
}

// DefaultGhosttyConfigPath is GhosttyConfigPath for the running OS.
func DefaultGhosttyConfigPath() (string, error) {
	return GhosttyConfigPath(runtime.GOOS)
}
