package entity

import "slices"

// Platform identifies an operating system a key applies to.
type Platform string

const (
	PlatformMacOS   Platform = "macos"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// SchemaEntry describes a single recognized configuration key.
type SchemaEntry struct {
	// Key is the directive name as written in the config file (e.g., "font-size")
	Key string `json:"key"`

	// Label is a human-readable name for display
	Label string `json:"label"`

	// Description explains the purpose of this config key
	Description string `json:"description,omitempty"`

	// Category governs parsing, formatting and validation of the value
	Category ValueCategory `json:"category"`

	// Repeatable keys may appear on several lines and aggregate into a list
	Repeatable bool `json:"repeatable"`

	// Default holds the raw default value(s); empty when the key has none.
	// Repeatable keys may have several.
	Default []string `json:"default,omitempty"`

	// Validation carries the category-specific constraints
	Validation Validation `json:"validation"`

	// Platforms restricts the key to some operating systems.
	// Empty means the key applies everywhere.
	Platforms []Platform `json:"platforms,omitempty"`

	// Tab and Section group related keys for navigation
	Tab     string `json:"tab"`
	Section string `json:"section"`
}

// HasDefault reports whether the schema defines a default value.
func (e SchemaEntry) HasDefault() bool {
	return len(e.Default) > 0
}

// AppliesTo reports whether the key is relevant on the given platform.
func (e SchemaEntry) AppliesTo(p Platform) bool {
	return len(e.Platforms) == 0 || slices.Contains(e.Platforms, p)
}

// Validation is the union of all category-specific constraints.
// Only the fields relevant to the entry's category are consulted.
type Validation struct {
	// Numeric constraints (number, opacity, adjustment integer form, padding components, special-number)
	Min      *float64 `toml:"min" json:"min,omitempty"`
	Max      *float64 `toml:"max" json:"max,omitempty"`
	Integer  bool     `toml:"integer" json:"integer,omitempty"`
	Positive bool     `toml:"positive" json:"positive,omitempty"`
	Unit     string   `toml:"unit" json:"unit,omitempty"`

	// Enumerations
	Values        []string `toml:"values" json:"values,omitempty"`
	CaseSensitive bool     `toml:"case_sensitive" json:"case_sensitive,omitempty"`
	Multiselect   bool     `toml:"multiselect" json:"multiselect,omitempty"`
	Separator     string   `toml:"separator" json:"separator,omitempty"`
	AllowNegation bool     `toml:"allow_negation" json:"allow_negation,omitempty"`
	AllowCustom   bool     `toml:"allow_custom" json:"allow_custom,omitempty"`

	// Colors
	SpecialValues []string `toml:"special_values" json:"special_values,omitempty"`

	// Text
	Pattern string `toml:"pattern" json:"pattern,omitempty"`

	// Paths
	Extensions []string `toml:"extensions" json:"extensions,omitempty"`

	// Adjustments
	MinPercentage *float64 `toml:"min_percentage" json:"min_percentage,omitempty"`
	MaxPercentage *float64 `toml:"max_percentage" json:"max_percentage,omitempty"`

	// Padding
	AllowPair bool `toml:"allow_pair" json:"allow_pair,omitempty"`

	// Font style
	AllowDisable bool `toml:"allow_disable" json:"allow_disable,omitempty"`
	AllowDefault bool `toml:"allow_default" json:"allow_default,omitempty"`

	// Repeatable text
	Format        string `toml:"format" json:"format,omitempty"`
	DisallowEmpty bool   `toml:"disallow_empty" json:"disallow_empty,omitempty"`

	// Keybindings and commands
	Prefixes        []string `toml:"prefixes" json:"prefixes,omitempty"`
	RequireModifier bool     `toml:"require_modifier" json:"require_modifier,omitempty"`
	ForbidSequences bool     `toml:"forbid_sequences" json:"forbid_sequences,omitempty"`
	ForbiddenKeys   []string `toml:"forbidden_keys" json:"forbidden_keys,omitempty"`

	// Special numbers
	SpecialFormats []string `toml:"special_formats" json:"special_formats,omitempty"`
	AllowBoolean   bool     `toml:"allow_boolean" json:"allow_boolean,omitempty"`
}

// EnumSeparator returns the multi-select separator, defaulting to a comma.
func (v Validation) EnumSeparator() string {
	if v.Separator == "" {
		return ","
	}
	return v.Separator
}
