package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

func sampleKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "font-size", Type: "number", Default: "13", Range: "1-500 pt", Tab: "Appearance", Section: "Font"},
		{Key: "cursor-style", Type: "enum", Default: "block", Values: []string{"block", "bar"}, Tab: "Appearance", Section: "Cursor"},
		{Key: "font-family", Type: "font-family", Repeatable: true, Tab: "Appearance", Section: "Font"},
		{Key: "macos-titlebar-style", Type: "enum", Platforms: []entity.Platform{entity.PlatformMacOS}, Tab: "Window", Section: "macOS"},
	}
}

func TestSchemaRenderer_GroupsInFirstAppearanceOrder(t *testing.T) {
	out := NewSchemaRenderer(NewTheme()).Render(sampleKeys())

	font := strings.Index(out, "Appearance / Font")
	cursor := strings.Index(out, "Appearance / Cursor")
	window := strings.Index(out, "Window / macOS")
	require.True(t, font >= 0 && cursor >= 0 && window >= 0)
	assert.Less(t, font, cursor)
	assert.Less(t, cursor, window)

	// font-family is grouped with font-size, before the cursor section
	assert.Less(t, strings.Index(out, "font-family"), cursor)
	assert.Contains(t, out, "Range: 1-500 pt")
	assert.Contains(t, out, "Values: block, bar")
	assert.Contains(t, out, "repeatable")
	assert.Contains(t, out, "macos only")
	assert.Contains(t, out, "4 keys")
}

func TestSchemaRenderer_Empty(t *testing.T) {
	assert.Contains(t, NewSchemaRenderer(NewTheme()).Render(nil), "No configuration keys found")
}
