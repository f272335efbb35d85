package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

var accentRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "console"}
	platforms  = []string{
		string(PlatformAuto), string(PlatformAll),
		string(entity.PlatformMacOS), string(entity.PlatformLinux), string(entity.PlatformWindows),
	}
)

// problems collects every invalid setting so they are reported together.
type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// oneOf reports key unless value is empty or listed in allowed.
func (p *problems) oneOf(key, value string, allowed []string) {
	if value == "" || slices.Contains(allowed, value) {
		return
	}
	p.addf("%s must be one of: %s (got: %s)", key, strings.Join(allowed, ", "), value)
}

func validateConfig(config *Config) error {
	var p problems
	p.logging(&config.Logging)
	p.editor(&config.Editor)
	if config.Database.RecentLimit < 1 {
		p.addf("database.recent_limit must be at least 1")
	}

	if len(p) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(p, "\n  - "))
	}
	return nil
}

func (p *problems) logging(l *LoggingConfig) {
	if l.MaxAge < 0 {
		p.addf("logging.max_age must be non-negative")
	}
	if l.MaxBackups < 0 {
		p.addf("logging.max_backups must be non-negative")
	}
	if l.MaxSizeMB <= 0 {
		p.addf("logging.max_size_mb must be positive")
	}
	p.oneOf("logging.level", l.Level, logLevels)
	p.oneOf("logging.format", l.Format, logFormats)
	if l.EnableFileLog && l.LogDir == "" {
		p.addf("logging.log_dir is required when enable_file_log is true")
	}
}

func (p *problems) editor(e *EditorConfig) {
	if e.Marker != "" && (!strings.HasPrefix(e.Marker, "#") || strings.ContainsAny(e.Marker, "\r\n")) {
		p.addf("editor.marker must be a single comment line starting with '#' (got: %q)", e.Marker)
	}
	if !slices.Contains(platforms, e.Platform) {
		p.addf("editor.platform must be one of: %s (got: %s)", strings.Join(platforms, ", "), e.Platform)
	}
	if e.Accent != "" && !accentRegex.MatchString(e.Accent) {
		p.addf("editor.accent must be a #rrggbb color (got: %s)", e.Accent)
	}
}
