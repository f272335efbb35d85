package entity

// LineKind classifies a physical line of a config file.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineDirective
	// LineUnknownDirective has a key = value shape but a key the schema does not know.
	LineUnknownDirective
	// LineMalformed has no separator at all.
	LineMalformed
)

// String returns a lowercase name for the kind.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineDirective:
		return "directive"
	case LineUnknownDirective:
		return "unknown-directive"
	case LineMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// SourceLine is one physical line of a parsed file.
// It is read-only once produced by the parser.
type SourceLine struct {
	// Text is the line content without its line terminator
	Text string
	// Newline is the terminator that followed the line, "\n", "\r\n" or
	// empty for a last line without one
	Newline string
	// Number is the 1-based line number
	Number int
	Kind   LineKind
	// Key and RawValue are set for directive and unknown-directive lines
	Key      string
	RawValue string
}
