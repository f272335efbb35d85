package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json logs", mutate: func(c *Config) { c.Logging.Format = "json" }},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "negative max age",
			mutate:  func(c *Config) { c.Logging.MaxAge = -1 },
			wantErr: "logging.max_age",
		},
		{
			name: "file log without dir",
			mutate: func(c *Config) {
				c.Logging.EnableFileLog = true
				c.Logging.LogDir = ""
			},
			wantErr: "logging.log_dir",
		},
		{
			name:    "marker without hash",
			mutate:  func(c *Config) { c.Editor.Marker = "Added" },
			wantErr: "editor.marker",
		},
		{
			name:    "multi-line marker",
			mutate:  func(c *Config) { c.Editor.Marker = "# a\n# b" },
			wantErr: "editor.marker",
		},
		{name: "empty marker uses default", mutate: func(c *Config) { c.Editor.Marker = "" }},
		{name: "platform macos", mutate: func(c *Config) { c.Editor.Platform = "macos" }},
		{
			name:    "unknown platform",
			mutate:  func(c *Config) { c.Editor.Platform = "beos" },
			wantErr: "editor.platform",
		},
		{name: "accent color", mutate: func(c *Config) { c.Editor.Accent = "#7aa2f7" }},
		{
			name:    "accent without hash",
			mutate:  func(c *Config) { c.Editor.Accent = "7aa2f7" },
			wantErr: "editor.accent",
		},
		{
			name:    "zero recent limit",
			mutate:  func(c *Config) { c.Database.RecentLimit = 0 },
			wantErr: "database.recent_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Logging.LogDir = "/tmp/ghostedit-logs"
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Editor.Platform = "beos"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "editor.platform")
}
