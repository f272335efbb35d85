package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ConsoleTimeFormat keeps console output short for interactive use.
const ConsoleTimeFormat = "15:04:05"

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig enables an additional rotated log file.
type FileConfig struct {
	Enabled    bool
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: ConsoleTimeFormat,
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	var output = w

	switch cfg.Format {
	case "console", "pretty", "text":
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues builds a logger from raw level and format strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return NewFromConfigValuesWithTimeFormat(level, format, ConsoleTimeFormat)
}

// NewFromConfigValuesWithTimeFormat is NewFromConfigValues with an explicit time format.
func NewFromConfigValuesWithTimeFormat(level, format, timeFormat string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format != "" {
		cfg.Format = format
	}
	if timeFormat != "" {
		cfg.TimeFormat = timeFormat
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// GHOSTEDIT_LOG_LEVEL: trace, debug, info, warn, error (default: warn)
// GHOSTEDIT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("GHOSTEDIT_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("GHOSTEDIT_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewWithFile returns a logger writing to stderr and, when enabled, to a
// rotated JSON file in fileCfg.LogDir. The cleanup func closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o700); err != nil {
		return New(cfg), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator, err := NewRotator(fileCfg)
	if err != nil {
		return New(cfg), func() {}, err
	}

	var console io.Writer = os.Stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// LogFilePath returns the active log file path inside dir.
func LogFilePath(dir string) string {
	return filepath.Join(dir, logFileName)
}

// Since logs elapsed time for a finished step at debug level.
func Since(logger *zerolog.Logger, step string, start time.Time) {
	logger.Debug().Str("step", step).Dur("elapsed", time.Since(start)).Msg("step finished")
}
