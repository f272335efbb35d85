package config

// Config holds the editor's own settings, read from
// $XDG_CONFIG_HOME/ghostedit/config.toml and GHOSTEDIT_* environment variables.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Editor   EditorConfig   `mapstructure:"editor" yaml:"editor" toml:"editor" json:"editor"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// EditorConfig controls how Ghostty config files are located and written.
type EditorConfig struct {
	// GhosttyConfig overrides the platform default Ghostty config path.
	GhosttyConfig string `mapstructure:"ghostty_config" yaml:"ghostty_config" toml:"ghostty_config" json:"ghostty_config,omitempty"`
	// Backup copies the previous file to <path>.bak before each save.
	Backup bool `mapstructure:"backup" yaml:"backup" toml:"backup" json:"backup"`
	// Marker is the comment written before keys the editor appends.
	Marker string `mapstructure:"marker" yaml:"marker" toml:"marker" json:"marker" jsonschema:"pattern=^#"`
	// Platform limits schema listings to one OS; "auto" uses the running OS and "all" disables the filter.
	Platform string `mapstructure:"platform" yaml:"platform" toml:"platform" json:"platform" jsonschema:"enum=auto,enum=all,enum=macos,enum=linux,enum=windows"`
	// Confirm asks before overwriting a file changed on disk and before saving
	// over repeated keys whose block holds comments.
	Confirm bool `mapstructure:"confirm" yaml:"confirm" toml:"confirm" json:"confirm"`
	// Accent is a hex color the terminal theme is derived from; empty keeps the default palette.
	Accent string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6})?$"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path of the recent-files database; empty uses $XDG_DATA_HOME/ghostedit/ghostedit.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
	// RecentLimit caps how many recent files are kept.
	RecentLimit int `mapstructure:"recent_limit" yaml:"recent_limit" toml:"recent_limit" json:"recent_limit" jsonschema:"minimum=1"`
}
