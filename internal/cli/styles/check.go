package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ghostedit/internal/application/usecase"
)

// CheckRenderer renders validation reports for one or more config files.
type CheckRenderer struct {
	theme  *Theme
	editor *EditorRenderer
}

// NewCheckRenderer creates a new CheckRenderer.
func NewCheckRenderer(theme *Theme) *CheckRenderer {
	return &CheckRenderer{theme: theme, editor: NewEditorRenderer(theme)}
}

// Render renders every report followed by a summary line.
func (r *CheckRenderer) Render(reports []usecase.FileReport) string {
	var sb strings.Builder
	clean := 0
	for _, rep := range reports {
		sb.WriteString(r.renderReport(rep))
		sb.WriteString("\n")
		if rep.Clean() {
			clean++
		}
	}

	summary := fmt.Sprintf("%d of %s clean", clean, pluralize(len(reports), "file"))
	if clean == len(reports) {
		sb.WriteString(r.theme.SuccessStyle.Render(summary))
	} else {
		sb.WriteString(r.theme.WarningStyle.Render(summary))
	}
	return sb.String()
}

func (r *CheckRenderer) renderReport(rep usecase.FileReport) string {
	var badge string
	switch {
	case rep.Error != "":
		badge = r.theme.StatusBadge("error", r.theme.Background, r.theme.Error)
	case rep.Clean():
		badge = r.theme.StatusBadge("ok", r.theme.Background, r.theme.Success)
	default:
		badge = r.theme.StatusBadge(pluralize(len(rep.Warnings), "warning"), r.theme.Background, r.theme.Warning)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s %s", iconStyle.Render(IconConfig), r.theme.Normal.Render(rep.Path), badge)

	if rep.Error != "" {
		return header + "\n  " + r.theme.ErrorStyle.Render(rep.Error) + "\n"
	}
	return header + "\n" + r.editor.RenderWarnings(rep.Warnings)
}
