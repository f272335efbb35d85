package value

import (
	"strconv"
	"strings"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

// Value is a decoded configuration value.
type Value interface {
	// Category returns the category the value was decoded as.
	Category() entity.ValueCategory
	// String returns the canonical raw form written to the config file.
	String() string
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Text is a free-form string.
type Text struct {
	S string
}

func (Text) Category() entity.ValueCategory { return entity.CategoryText }
func (v Text) String() string               { return v.S }

// Number is a plain numeric value.
type Number struct {
	N float64
}

func (Number) Category() entity.ValueCategory { return entity.CategoryNumber }
func (v Number) String() string               { return formatNumber(v.N) }

// Bool is a true/false value.
type Bool struct {
	B bool
}

func (Bool) Category() entity.ValueCategory { return entity.CategoryBoolean }
func (v Bool) String() string               { return strconv.FormatBool(v.B) }

// EnumToken is one selected member of an enumeration.
type EnumToken struct {
	Name    string
	Negated bool
}

// NegationPrefix marks a disabled member of a multi-select enumeration.
const NegationPrefix = "no-"

func (t EnumToken) String() string {
	if t.Negated {
		return NegationPrefix + t.Name
	}
	return t.Name
}

// Enum holds the selected members of an enumeration.
// Single-select values always have exactly one token.
type Enum struct {
	Tokens    []EnumToken
	Separator string
}

func (Enum) Category() entity.ValueCategory { return entity.CategoryEnum }

func (v Enum) String() string {
	parts := make([]string, len(v.Tokens))
	for i, t := range v.Tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, v.Separator)
}

// Opacity is a bounded fraction.
type Opacity struct {
	N float64
}

func (Opacity) Category() entity.ValueCategory { return entity.CategoryOpacity }
func (v Opacity) String() string               { return formatNumber(v.N) }

// Path is a filesystem path. Optional paths are written with a leading "?".
type Path struct {
	Path     string
	Optional bool
}

func (Path) Category() entity.ValueCategory { return entity.CategoryPath }

func (v Path) String() string {
	if v.Optional {
		return "?" + v.Path
	}
	return v.Path
}

// Color is either a normalized #rrggbb color or a special sentinel value.
type Color struct {
	Hex     string
	Special string
}

func (Color) Category() entity.ValueCategory { return entity.CategoryColor }

func (v Color) String() string {
	if v.Special != "" {
		return v.Special
	}
	return v.Hex
}

// Command is a command line with an optional execution prefix.
type Command struct {
	Prefix  string
	Command string
}

func (Command) Category() entity.ValueCategory { return entity.CategoryCommand }
func (v Command) String() string               { return v.Prefix + v.Command }

// Adjustment is a signed integer or a percentage.
type Adjustment struct {
	Amount  float64
	Percent bool
}

func (Adjustment) Category() entity.ValueCategory { return entity.CategoryAdjustment }

func (v Adjustment) String() string {
	if v.Percent {
		return formatNumber(v.Amount) + "%"
	}
	return formatNumber(v.Amount)
}

// Padding is one value for both sides or an asymmetric pair.
type Padding struct {
	First  float64
	Second float64
	Pair   bool
}

func (Padding) Category() entity.ValueCategory { return entity.CategoryPadding }

func (v Padding) String() string {
	if v.Pair {
		return formatNumber(v.First) + "," + formatNumber(v.Second)
	}
	return formatNumber(v.First)
}

// FontStyleMode distinguishes the three font-style forms.
type FontStyleMode int

const (
	FontStyleNamed FontStyleMode = iota
	FontStyleDefault
	FontStyleDisabled
)

// FontStyle is a style name, "default" or "false".
type FontStyle struct {
	Mode FontStyleMode
	Name string
}

func (FontStyle) Category() entity.ValueCategory { return entity.CategoryFontStyle }

func (v FontStyle) String() string {
	switch v.Mode {
	case FontStyleDefault:
		return "default"
	case FontStyleDisabled:
		return "false"
	default:
		return v.Name
	}
}

// TextItem is one element of a repeatable text list. Empty items are meaningful.
type TextItem struct {
	S string
}

func (TextItem) Category() entity.ValueCategory { return entity.CategoryRepeatableText }
func (v TextItem) String() string               { return v.S }

// SpecialNumberKind tells which form a special number was written in.
type SpecialNumberKind int

const (
	SpecialNumeric SpecialNumberKind = iota
	SpecialLiteral
	SpecialBool
)

// SpecialNumber is a number that may also be a configured literal format or a boolean.
type SpecialNumber struct {
	Kind    SpecialNumberKind
	N       float64
	Literal string
	B       bool
}

func (SpecialNumber) Category() entity.ValueCategory { return entity.CategorySpecialNumber }

func (v SpecialNumber) String() string {
	switch v.Kind {
	case SpecialLiteral:
		return v.Literal
	case SpecialBool:
		return strconv.FormatBool(v.B)
	default:
		return formatNumber(v.N)
	}
}

// FontFamily is a font family name; empty resets to the system default.
type FontFamily struct {
	Name string
}

func (FontFamily) Category() entity.ValueCategory { return entity.CategoryFontFamily }
func (v FontFamily) String() string               { return v.Name }

// Empty is the value of a directive with nothing after "=". Ghostty reads it
// as "reset to the default" (or "clear the list" for repeatable keys), so it
// is valid for every category.
type Empty struct {
	Cat entity.ValueCategory
}

func (v Empty) Category() entity.ValueCategory { return v.Cat }
func (Empty) String() string                   { return "" }

// Unparsed keeps the raw text of a value that could not be decoded.
type Unparsed struct {
	Cat entity.ValueCategory
	Raw string
}

func (v Unparsed) Category() entity.ValueCategory { return v.Cat }
func (v Unparsed) String() string                 { return v.Raw }
