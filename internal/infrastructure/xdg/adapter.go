package xdg

import (
	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct {
	goos string
}

// New creates a new XDG paths adapter for the running OS.
func New() *Adapter {
	return &Adapter{}
}

// NewForOS creates an adapter resolving the Ghostty config location as on goos.
func NewForOS(goos string) *Adapter {
	return &Adapter{goos: goos}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) CacheDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

func (a *Adapter) GhosttyConfigFile() (string, error) {
	if a.goos == "" {
		return config.DefaultGhosttyConfigPath()
	}
	return config.GhosttyConfigPath(a.goos)
}

var _ port.XDGPaths = (*Adapter)(nil)
