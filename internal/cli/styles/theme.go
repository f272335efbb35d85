// Package styles renders ghostedit output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	errorHex   = "#ef4444"
	warningHex = "#f59e0b"
)

// Palette is the set of base colors a Theme is built from, as hex strings.
type Palette struct {
	Background string
	Surface    string
	Chip       string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

// DefaultDarkPalette is used when no accent is configured.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Chip:       "#2d2d2d",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
	}
}

// PaletteFromAccent tints the border and chip colors of the default palette
// toward accent. An accent that is not a hex color yields the default palette.
func PaletteFromAccent(accent string) Palette {
	p := DefaultDarkPalette()
	c, err := colorful.Hex(accent)
	if err != nil {
		return p
	}

	hue, _, _ := c.Hcl()
	p.Accent = c.Hex()
	p.Border = colorful.Hcl(hue, 0.08, 0.25).Clamped().Hex()
	p.Chip = colorful.Hcl(hue, 0.05, 0.2).Clamped().Hex()
	return p
}

// Theme is the colors and styles shared by every renderer.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// diff lines
	Added    lipgloss.Style
	Removed  lipgloss.Style
	Modified lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style
	Badge          lipgloss.Style
	BadgeMuted     lipgloss.Style
	Box            lipgloss.Style
}

// NewTheme builds the default dark theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette builds a theme around p.
func NewThemeFromPalette(p Palette) *Theme {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	surface := lipgloss.Color(p.Surface)
	chip := lipgloss.Color(p.Chip)
	border := lipgloss.Color(p.Border)

	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Accent:     lipgloss.Color(p.Accent),
		Error:      lipgloss.Color(errorHex),
		Warning:    lipgloss.Color(warningHex),
		Success:    lipgloss.Color(p.Accent),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(text).Bold(true)
	t.Normal = fg(text)
	t.Subtle = fg(muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Added = t.SuccessStyle
	t.Removed = t.ErrorStyle
	t.Modified = t.WarningStyle

	t.ActiveButton = fg(t.Background).Background(t.Accent).Padding(0, 2).Bold(true)
	t.InactiveButton = fg(muted).Background(surface).Padding(0, 2)
	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(text).Background(chip).Padding(0, 1)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)

	return t
}
