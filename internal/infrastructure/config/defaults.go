package config

import "github.com/bnema/ghostedit/internal/domain/document"

// Default configuration constants
const (
	defaultLogLevel      = "warn"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 5
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days

	defaultPlatform    = PlatformAuto
	defaultRecentLimit = 20
)

// Platform filter values besides the entity.Platform names.
const (
	PlatformAuto = "auto"
	PlatformAll  = "all"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Editor: EditorConfig{
			Backup:   true,
			Marker:   document.DefaultMarker,
			Platform: defaultPlatform,
			Confirm:  true,
		},
		Database: DatabaseConfig{
			RecentLimit: defaultRecentLimit,
		},
	}
}
