package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

// KeyValues is one key's raw values for display. Default marks values that
// come from the schema because the file does not set the key.
type KeyValues struct {
	Key     string   `json:"key" yaml:"key"`
	Values  []string `json:"values" yaml:"values"`
	Default bool     `json:"default,omitempty" yaml:"default,omitempty"`
	Flagged bool     `json:"flagged,omitempty" yaml:"flagged,omitempty"`
}

// EditorRenderer renders config file status, values, warnings and diffs.
type EditorRenderer struct {
	theme *Theme
}

// NewEditorRenderer creates a new editor renderer with the given theme.
func NewEditorRenderer(theme *Theme) *EditorRenderer {
	return &EditorRenderer{theme: theme}
}

// RenderFileInfo renders the config path with key and warning counts.
func (r *EditorRenderer) RenderFileInfo(path string, exists bool, keys, warnings int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.Subtle.Render(fmt.Sprintf("%d keys", keys))
	if !exists {
		status = r.theme.WarningStyle.Render("new file")
	}
	if warnings > 0 {
		status += " " + r.theme.WarningStyle.Render(fmt.Sprintf("%d warnings", warnings))
	}

	return fmt.Sprintf("%s %s  %s", iconStyle.Render(IconConfig), r.theme.Normal.Render(path), status)
}

// RenderValues renders "key = value" lines, one per value.
func (r *EditorRenderer) RenderValues(entries []KeyValues) string {
	if len(entries) == 0 {
		return r.theme.Subtle.Render("No values set")
	}

	keyStyle := r.theme.Normal.Bold(true)
	var lines []string
	for _, e := range entries {
		values := e.Values
		if len(values) == 0 {
			values = []string{""}
		}
		for _, v := range values {
			line := keyStyle.Render(e.Key) + " = " + v
			switch {
			case e.Default:
				line += "  " + r.theme.Subtle.Render("(default)")
			case e.Flagged:
				line += "  " + r.theme.WarningStyle.Render(IconWarning+" invalid")
			}
			lines = append(lines, strings.TrimRight(line, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderWarnings renders parse and validation warnings, one per line.
func (r *EditorRenderer) RenderWarnings(warnings []entity.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	var sb strings.Builder
	for _, w := range warnings {
		fmt.Fprintf(&sb, "  %s %s %s\n",
			iconStyle.Render(IconWarning),
			r.theme.Subtle.Render(string(w.Kind)),
			r.theme.Normal.Render(w.String()),
		)
	}
	return sb.String()
}

// RenderDiff colors the lines of a formatted diff by their +, - or ~ marker.
func (r *EditorRenderer) RenderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch trimmed := strings.TrimSpace(line); {
		case strings.HasPrefix(trimmed, "+ "):
			lines[i] = r.theme.Added.Render(line)
		case strings.HasPrefix(trimmed, "- "):
			lines[i] = r.theme.Removed.Render(line)
		case strings.HasPrefix(trimmed, "~ "):
			lines[i] = r.theme.Modified.Render(line)
		case i == 0:
			lines[i] = r.theme.Title.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderSaved renders the success message after a save.
func (r *EditorRenderer) RenderSaved(path, backupPath string, changes int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	msg := fmt.Sprintf("%s Saved %s to %s",
		iconStyle.Render(IconSave),
		r.theme.Highlight.Render(pluralize(changes, "change")),
		r.theme.Normal.Render(filepath.Base(path)),
	)
	if backupPath != "" {
		msg += "\n  " + r.theme.Subtle.Render("backup: "+backupPath)
	}
	return msg
}

// RenderNoChanges renders the message for a save that had nothing to write.
func (r *EditorRenderer) RenderNoChanges(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconCheck),
		r.theme.Normal.Render(filepath.Base(path)),
		r.theme.Subtle.Render("already up to date"),
	)
}

// RenderStale renders the hint shown when the file changed on disk.
func (r *EditorRenderer) RenderStale(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("%s %s %s\n  %s",
		iconStyle.Render(IconWarning),
		r.theme.Normal.Render(path),
		r.theme.WarningStyle.Render("changed on disk since it was loaded"),
		r.theme.Subtle.Render("rerun with --force to overwrite it"),
	)
}

// RenderError renders an error message.
func (r *EditorRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
