package entity

import "fmt"

// ValueCategory tags the value shape of a configuration key.
// The set is closed: every category has exactly one codec in the value package.
type ValueCategory int

const (
	CategoryText ValueCategory = iota
	CategoryNumber
	CategoryBoolean
	CategoryEnum
	CategoryOpacity
	CategoryPath
	CategoryColor
	CategoryKeybinding
	CategoryCommand
	CategoryAdjustment
	CategoryPadding
	CategoryFontStyle
	CategoryRepeatableText
	CategorySpecialNumber
	CategoryFontFamily

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryText:           "text",
	CategoryNumber:         "number",
	CategoryBoolean:        "boolean",
	CategoryEnum:           "enum",
	CategoryOpacity:        "opacity",
	CategoryPath:           "filepath",
	CategoryColor:          "color",
	CategoryKeybinding:     "keybinding",
	CategoryCommand:        "command",
	CategoryAdjustment:     "adjustment",
	CategoryPadding:        "padding",
	CategoryFontStyle:      "font-style",
	CategoryRepeatableText: "repeatable-text",
	CategorySpecialNumber:  "special-number",
	CategoryFontFamily:     "font-family",
}

// AllCategories returns every known category in declaration order.
func AllCategories() []ValueCategory {
	out := make([]ValueCategory, 0, categoryCount)
	for c := ValueCategory(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the known categories.
func (c ValueCategory) Valid() bool {
	return c >= 0 && c < categoryCount
}

// String returns the tag used in the schema definition.
func (c ValueCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseValueCategory resolves a schema tag to its category.
func ParseValueCategory(tag string) (ValueCategory, error) {
	for c, name := range categoryNames {
		if name == tag {
			return ValueCategory(c), nil
		}
	}
	return 0, fmt.Errorf("unknown value category %q", tag)
}

// MarshalText implements encoding.TextMarshaler.
func (c ValueCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid value category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ValueCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseValueCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
