package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ghostedit/internal/domain/build"
)

const ghostLogo = ` ▄███▄
█ ▀ ▀ █
█     █
█▄▀▄▀▄█`

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info and the size of the bundled key schema.
func (r *AboutRenderer) Render(info build.Info, schemaKeys int) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(ghostLogo)

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.details(info, schemaKeys))
}

func (r *AboutRenderer) details(info build.Info, schemaKeys int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	rows := []struct{ icon, label, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
		{IconConfig, "Schema", fmt.Sprintf("%d keys", schemaKeys)},
	}

	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			iconStyle.Render(row.icon),
			r.theme.Subtle.Render(fmt.Sprintf("%-8s", row.label)),
			r.theme.Highlight.Render(row.value)))
	}
	lines = append(lines,
		"",
		iconStyle.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		r.theme.Subtle.Render("by ")+r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	)
	return strings.Join(lines, "\n")
}
