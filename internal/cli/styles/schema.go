package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

// SchemaRenderer renders Ghostty key schema information.
type SchemaRenderer struct {
	theme *Theme
}

// NewSchemaRenderer creates a new SchemaRenderer.
func NewSchemaRenderer(theme *Theme) *SchemaRenderer {
	return &SchemaRenderer{theme: theme}
}

// Render renders the keys grouped by tab and section, in the order given.
func (r *SchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	parts := []string{r.renderHeader(len(keys)), ""}
	for _, g := range groupBySection(keys) {
		parts = append(parts, r.renderSection(g.title, g.keys), "")
	}

	return strings.Join(parts, "\n")
}

func (r *SchemaRenderer) renderHeader(count int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render("Ghostty Config Reference"),
		r.theme.Subtle.Render(pluralize(count, "key")),
	)
}

type sectionGroup struct {
	title string
	keys  []entity.ConfigKeyInfo
}

// groupBySection keeps the first-appearance order of "Tab / Section" pairs.
func groupBySection(keys []entity.ConfigKeyInfo) []sectionGroup {
	var groups []sectionGroup
	index := make(map[string]int)
	for _, key := range keys {
		title := key.Tab + " / " + key.Section
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, sectionGroup{title: title})
		}
		groups[i].keys = append(groups[i].keys, key)
	}
	return groups
}

func (r *SchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	boxContent := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(boxContent)
}

func (r *SchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	typeStyle := r.theme.Subtle
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	descStyle := r.theme.Subtle
	valuesStyle := r.theme.Normal

	typ := key.Type
	if key.Repeatable {
		typ += ", repeatable"
	}
	if len(key.Platforms) > 0 {
		platforms := make([]string, len(key.Platforms))
		for i, p := range key.Platforms {
			platforms[i] = string(p)
		}
		typ += ", " + strings.Join(platforms, "/") + " only"
	}

	// Line 1: key name, type, default
	line1 := fmt.Sprintf("%s  %s  %s",
		keyStyle.Render(key.Key),
		typeStyle.Render(typ),
		defaultStyle.Render(strings.ReplaceAll(key.Default, "\n", ", ")),
	)
	result := strings.TrimRight(line1, " ")

	if key.Description != "" {
		result += "\n  " + descStyle.Render(key.Description)
	}

	// Values or range
	if len(key.Values) > 0 {
		result += "\n  " + valuesStyle.Render("Values: "+strings.Join(key.Values, ", "))
	} else if key.Range != "" {
		result += "\n  " + valuesStyle.Render("Range: "+key.Range)
	}

	return result
}
