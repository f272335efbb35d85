package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CountBadge renders "n noun(s)" in a muted badge.
func (t *Theme) CountBadge(n int64, noun string) string {
	return t.BadgeMuted.Render(pluralize(int(n), noun))
}

// TimeBadge renders how long ago tm was in a muted badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// AccentBadge renders text in the accent badge.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// StatusBadge renders text on a bg-colored pill.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1).Render(text)
}

// Units for RelativeTime, largest first.
var relativeUnits = []struct {
	size   time.Duration
	suffix string
}{
	{365 * 24 * time.Hour, "y"},
	{30 * 24 * time.Hour, "mo"},
	{7 * 24 * time.Hour, "w"},
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
}

// RelativeTime formats tm as a short age such as "5m ago" or "2w ago".
func RelativeTime(tm time.Time) string {
	age := time.Since(tm)
	for _, u := range relativeUnits {
		if age >= u.size {
			return fmt.Sprintf("%d%s ago", int64(age/u.size), u.suffix)
		}
	}
	return "just now"
}
