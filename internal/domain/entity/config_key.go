package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the directive name (e.g., "cursor-style")
	Key string `json:"key" yaml:"key"`

	// Label is a human-readable name
	Label string `json:"label" yaml:"label"`

	// Type is the value category tag (e.g., "enum", "color", "padding")
	Type string `json:"type" yaml:"type"`

	// Default is the default value as a string representation.
	// Repeatable keys with several defaults are joined with newlines.
	Default string `json:"default" yaml:"default"`

	// Description explains the purpose of this config key
	Description string `json:"description" yaml:"description"`

	// Values contains valid enum values
	// Empty if not an enum type
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Range describes numeric constraints (e.g., "1-500 pt", ">= 0")
	// Empty if no range constraint
	Range string `json:"range,omitempty" yaml:"range,omitempty"`

	// Repeatable keys may be written on several lines
	Repeatable bool `json:"repeatable" yaml:"repeatable"`

	// Platforms lists the operating systems the key applies to; empty means all
	Platforms []Platform `json:"platforms,omitempty" yaml:"platforms,omitempty"`

	// Tab and Section group related keys (e.g., "Appearance" / "Font")
	Tab     string `json:"tab" yaml:"tab"`
	Section string `json:"section" yaml:"section"`
}

// AppliesTo reports whether the key is relevant on the given platform.
func (k ConfigKeyInfo) AppliesTo(p Platform) bool {
	if len(k.Platforms) == 0 {
		return true
	}
	for _, kp := range k.Platforms {
		if kp == p {
			return true
		}
	}
	return false
}
