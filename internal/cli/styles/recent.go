package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

// RecentRenderer renders the recent file list.
type RecentRenderer struct {
	theme *Theme
}

// NewRecentRenderer creates a new RecentRenderer.
func NewRecentRenderer(theme *Theme) *RecentRenderer {
	return &RecentRenderer{theme: theme}
}

// Render renders one line per file, most recent first.
func (r *RecentRenderer) Render(files []*entity.RecentFile) string {
	if len(files) == 0 {
		return r.theme.Subtle.Render("No recent files")
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(files))
	for _, f := range files {
		line := fmt.Sprintf("%s %s  %s %s",
			iconStyle.Render(IconCursor),
			r.theme.Normal.Render(f.Path),
			r.theme.TimeBadge(f.OpenedAt),
			r.theme.CountBadge(f.OpenCount, "open"),
		)
		if f.Saved() {
			line += " " + r.theme.AccentBadge("saved "+RelativeTime(f.SavedAt))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
