package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// envAliases binds keys whose variable is not derived from the prefix, or
// that have no default for AutomaticEnv to find.
var envAliases = map[string]string{
	"logging.level":         "GHOSTEDIT_LOG_LEVEL",
	"logging.format":        "GHOSTEDIT_LOG_FORMAT",
	"editor.ghostty_config": "GHOSTEDIT_GHOSTTY_CONFIG",
	"database.path":         "GHOSTEDIT_DATABASE_PATH",
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// GHOSTEDIT_EDITOR_BACKUP, GHOSTEDIT_DATABASE_PATH, ...
	v.SetEnvPrefix("GHOSTEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing settings file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.resolve()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// resolve turns the values viper holds into a normalized, validated Config.
func (m *Manager) resolve() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = filepath.Join(m.configDir, configName)
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}

	config.Editor.Platform = strings.ToLower(strings.TrimSpace(config.Editor.Platform))
	if config.Editor.Platform == "" {
		config.Editor.Platform = defaultPlatform
	}
	config.Editor.Marker = strings.TrimRight(config.Editor.Marker, " \t")
	config.Editor.Accent = strings.TrimSpace(config.Editor.Accent)
	config.Editor.GhosttyConfig = expandHome(strings.TrimSpace(config.Editor.GhosttyConfig))
	config.Database.Path = expandHome(config.Database.Path)
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// GhosttyConfigPath returns the configured Ghostty config path, or the
// platform default when none is set.
func (c *Config) GhosttyConfigPath() (string, error) {
	if c.Editor.GhosttyConfig != "" {
		return c.Editor.GhosttyConfig, nil
	}
	return DefaultGhosttyConfigPath()
}

// createDefaultConfig writes the defaults and their JSON Schema to the config directory.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := filepath.Join(m.configDir, configName)
	defaults := DefaultConfig()
	// Paths resolved at load time are not pinned in the file.
	defaults.Logging.LogDir = ""
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}

	if err := GenerateSchemaFile(m.configDir); err != nil {
		return err
	}
	return nil
}

// setDefaults registers every settings key with viper so AutomaticEnv and
// Unmarshal see it. Database.Path and Logging.LogDir are resolved in Load.
func (m *Manager) setDefaults() {
	d := DefaultConfig()
	for key, value := range map[string]any{
		"logging.level":           d.Logging.Level,
		"logging.format":          d.Logging.Format,
		"logging.enable_file_log": d.Logging.EnableFileLog,
		"logging.max_size_mb":     d.Logging.MaxSizeMB,
		"logging.max_backups":     d.Logging.MaxBackups,
		"logging.max_age":         d.Logging.MaxAge,
		"logging.compress":        d.Logging.Compress,

		"editor.ghostty_config": d.Editor.GhosttyConfig,
		"editor.backup":         d.Editor.Backup,
		"editor.marker":         d.Editor.Marker,
		"editor.platform":       d.Editor.Platform,
		"editor.confirm":        d.Editor.Confirm,
		"editor.accent":         d.Editor.Accent,

		"database.recent_limit": d.Database.RecentLimit,
	} {
		m.viper.SetDefault(key, value)
	}
}
