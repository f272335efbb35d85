package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/domain/document"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Logging.EnableFileLog)
	assert.True(t, cfg.Editor.Backup)
	assert.Equal(t, document.DefaultMarker, cfg.Editor.Marker)
	assert.Equal(t, PlatformAuto, cfg.Editor.Platform)
	assert.Equal(t, 20, cfg.Database.RecentLimit)
	require.NoError(t, validateConfig(cfg))
}
