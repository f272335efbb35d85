package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/ghostedit/internal/application/port"
)

func TestFormatChangesAsDiff_Empty(t *testing.T) {
	assert.Equal(t, "No changes detected.", NewDiffFormatter().FormatChangesAsDiff(nil))
}

func TestFormatChangesAsDiff(t *testing.T) {
	changes := []port.KeyChange{
		{Type: port.KeyChangeModified, Key: "font-size", OldValues: []string{"12"}, NewValues: []string{"14"}},
		{Type: port.KeyChangeAdded, Key: "keybind", NewValues: []string{"ctrl+a=select_all", "ctrl+c=copy_to_clipboard"}},
		{Type: port.KeyChangeRemoved, Key: "theme", OldValues: []string{"dark"}},
		{Type: port.KeyChangeAdded, Key: "title", NewValues: []string{""}},
	}

	got := NewDiffFormatter().FormatChangesAsDiff(changes)

	want := "Pending changes:\n\n" +
		"  ~ font-size\n" +
		"    - font-size = 12\n" +
		"    + font-size = 14\n" +
		"  + keybind = ctrl+a=select_all\n" +
		"  + keybind = ctrl+c=copy_to_clipboard\n" +
		"  - theme = dark\n" +
		"  + title =\n"
	assert.Equal(t, want, got)
}
