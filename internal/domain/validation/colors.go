package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var hexColorRE = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor accepts #RGB, #RRGGBB and the bare RRGGBB form Ghostty also reads.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NormalizeHex returns the color as lowercase #rrggbb, expanding the short form.
func NormalizeHex(value string) string {
	hex := strings.ToLower(strings.TrimPrefix(value, "#"))
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + hex
}

// ValidatePaletteEntry checks an "N=color" palette assignment, N in 0..255.
func ValidatePaletteEntry(value string) []string {
	var errs []string

	index, color, ok := strings.Cut(value, "=")
	if !ok {
		return []string{"palette entry must look like N=#RRGGBB"}
	}

	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil || n < 0 || n > 255 {
		errs = append(errs, "palette index must be an integer between 0 and 255")
	}
	if !IsHexColor(strings.TrimSpace(color)) {
		errs = append(errs, "palette color must be a hex color like #RRGGBB")
	}

	return errs
}
