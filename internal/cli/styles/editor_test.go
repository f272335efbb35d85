package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

func TestEditorRenderer_RenderValues(t *testing.T) {
	r := NewEditorRenderer(NewTheme())

	out := r.RenderValues([]KeyValues{
		{Key: "font-size", Values: []string{"14"}},
		{Key: "keybind", Values: []string{"ctrl+a=select_all", "ctrl+c=copy_to_clipboard"}},
		{Key: "cursor-style", Values: []string{"block"}, Default: true},
		{Key: "background-opacity", Values: []string{"2"}, Flagged: true},
		{Key: "title", Values: nil},
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "font-size = 14")
	assert.Contains(t, lines[2], "keybind = ctrl+c=copy_to_clipboard")
	assert.Contains(t, lines[3], "(default)")
	assert.Contains(t, lines[4], "invalid")
	assert.Contains(t, lines[5], "title =")
}

func TestEditorRenderer_RenderValuesEmpty(t *testing.T) {
	assert.Contains(t, NewEditorRenderer(NewTheme()).RenderValues(nil), "No values set")
}

func TestEditorRenderer_RenderWarnings(t *testing.T) {
	r := NewEditorRenderer(NewTheme())

	assert.Empty(t, r.RenderWarnings(nil))

	out := r.RenderWarnings([]entity.Warning{
		{Kind: entity.WarningUnknownKey, Line: 3, Key: "font-sise", Message: `unknown key "font-sise"`},
	})
	assert.Contains(t, out, "unknown-key")
	assert.Contains(t, out, `line 3: unknown key "font-sise"`)
}

func TestEditorRenderer_RenderDiffKeepsText(t *testing.T) {
	diff := "Pending changes:\n\n  ~ font-size\n    - font-size = 12\n    + font-size = 14\n"

	out := NewEditorRenderer(NewTheme()).RenderDiff(diff)

	assert.Contains(t, out, "Pending changes:")
	assert.Contains(t, out, "- font-size = 12")
	assert.Contains(t, out, "+ font-size = 14")
}

func TestEditorRenderer_Messages(t *testing.T) {
	r := NewEditorRenderer(NewTheme())

	saved := r.RenderSaved("/home/me/.config/ghostty/config", "/home/me/.config/ghostty/config.bak", 2)
	assert.Contains(t, saved, "2 changes")
	assert.Contains(t, saved, "config.bak")

	assert.Contains(t, r.RenderSaved("/tmp/config", "", 1), "1 change")
	assert.NotContains(t, r.RenderSaved("/tmp/config", "", 1), "backup")
	assert.Contains(t, r.RenderNoChanges("/tmp/config"), "already up to date")
	assert.Contains(t, r.RenderStale("/tmp/config"), "--force")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestPaletteFromAccent(t *testing.T) {
	p := PaletteFromAccent("#ff0000")
	assert.Equal(t, "#ff0000", p.Accent)
	assert.NotEqual(t, DefaultDarkPalette().Border, p.Border)

	assert.Equal(t, DefaultDarkPalette(), PaletteFromAccent("not a color"))
}
