package validation

import "strings"

const maxFontFamilyLength = 200

// ValidateFontFamily checks a font family name. An empty name is valid and
// resets the family list to the system default.
func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		return nil
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if len(value) > maxFontFamilyLength {
		errs = append(errs, field+" is too long")
	}

	return errs
}
