package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "font-size").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"key":"font-size"`)
	assert.Contains(t, out, `"message":"visible"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "saver")
	ctx = WithPath(ctx, "/tmp/config")
	FromContext(ctx).Debug().Msg("saved")

	out := buf.String()
	assert.Contains(t, out, `"component":"saver"`)
	assert.Contains(t, out, `"path":"/tmp/config"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestNewWithFile_WritesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, LogDir: dir, MaxSizeMB: 1, MaxBackups: 2},
	)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	cleanup()

	data, err := os.ReadFile(LogFilePath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewWithFile_Disabled(t *testing.T) {
	_, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	cleanup()
}
