package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	CacheDir() (string, error)

	// GhosttyConfigFile returns the platform default location of the Ghostty config file.
	GhosttyConfigFile() (string, error)
}
