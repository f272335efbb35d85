package entity

import "fmt"

// WarningKind categorizes a parse or validation anomaly.
type WarningKind string

const (
	WarningUnknownKey    WarningKind = "unknown-key"
	WarningValidation    WarningKind = "validation"
	WarningDuplicateKey  WarningKind = "duplicate-key"
	WarningMalformedLine WarningKind = "malformed-line"
	WarningInclude       WarningKind = "include-directive"
	WarningStaleComment  WarningKind = "stale-comment"
)

// Warning records a recoverable anomaly found while parsing or editing.
type Warning struct {
	Kind WarningKind `json:"kind" yaml:"kind"`
	// Line is the 1-based line number, 0 when not tied to a line
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// String formats the warning for logs and terminal output.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}
