package value

import (
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/validation"
)

// Repeatable text formats.
const (
	FormatPlain      = "plain"
	FormatKeyValue   = "key-value"
	FormatAssignment = "assignment"
	FormatPalette    = "palette"
)

var defaultCommandPrefixes = []string{"direct:", "shell:"}

// Decode parses raw according to the entry's category. An empty raw decodes
// to Empty whatever the category. On a syntax error it returns an Unparsed
// value holding raw together with a *Error.
func Decode(entry entity.SchemaEntry, raw string) (Value, error) {
	if raw == "" {
		return Empty{Cat: entry.Category}, nil
	}
	v, problem := decode(entry, raw)
	if problem != "" {
		return Unparsed{Cat: entry.Category, Raw: raw}, newError(entry.Key, raw, []string{problem})
	}
	return v, nil
}

func decode(entry entity.SchemaEntry, raw string) (Value, string) {
	rules := entry.Validation

	switch entry.Category {
	case entity.CategoryText:
		return Text{S: raw}, ""

	case entity.CategoryNumber:
		n, ok := parseFinite(raw)
		if !ok {
			return nil, "must be a number"
		}
		return Number{N: n}, ""

	case entity.CategoryBoolean:
		switch {
		case strings.EqualFold(raw, "true"):
			return Bool{B: true}, ""
		case strings.EqualFold(raw, "false"):
			return Bool{B: false}, ""
		}
		return nil, "must be true or false"

	case entity.CategoryEnum:
		return decodeEnum(rules, raw), ""

	case entity.CategoryOpacity:
		n, ok := parseFinite(raw)
		if !ok {
			return nil, "must be a number"
		}
		return Opacity{N: n}, ""

	case entity.CategoryPath:
		if rest, ok := strings.CutPrefix(raw, "?"); ok {
			return Path{Path: rest, Optional: true}, ""
		}
		return Path{Path: raw}, ""

	case entity.CategoryColor:
		for _, s := range rules.SpecialValues {
			if strings.EqualFold(raw, s) {
				return Color{Special: s}, ""
			}
		}
		if !validation.IsHexColor(raw) {
			return nil, "must be a hex color like #RRGGBB"
		}
		c, err := colorful.Hex(validation.NormalizeHex(raw))
		if err != nil {
			return nil, "must be a hex color like #RRGGBB"
		}
		return Color{Hex: c.Hex()}, ""

	case entity.CategoryKeybinding:
		kb, err := decodeKeybind(raw)
		if err != nil {
			return nil, err.Error()
		}
		return kb, ""

	case entity.CategoryCommand:
		prefixes := rules.Prefixes
		if len(prefixes) == 0 {
			prefixes = defaultCommandPrefixes
		}
		for _, p := range prefixes {
			if rest, ok := strings.CutPrefix(raw, p); ok {
				return Command{Prefix: p, Command: rest}, ""
			}
		}
		return Command{Command: raw}, ""

	case entity.CategoryAdjustment:
		if num, ok := strings.CutSuffix(raw, "%"); ok {
			n, ok := parseFinite(num)
			if !ok {
				return nil, "percentage must be a number followed by %"
			}
			return Adjustment{Amount: n, Percent: true}, ""
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "must be an integer or a percentage"
		}
		return Adjustment{Amount: float64(n)}, ""

	case entity.CategoryPadding:
		parts := strings.Split(raw, ",")
		if len(parts) > 2 {
			return nil, "must be a number or a pair like 2,4"
		}
		first, ok := parseFinite(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, "must be a number or a pair like 2,4"
		}
		if len(parts) == 1 {
			return Padding{First: first}, ""
		}
		second, ok := parseFinite(strings.TrimSpace(parts[1]))
		if !ok {
			return nil, "must be a number or a pair like 2,4"
		}
		return Padding{First: first, Second: second, Pair: true}, ""

	case entity.CategoryFontStyle:
		switch raw {
		case "default":
			return FontStyle{Mode: FontStyleDefault}, ""
		case "false":
			return FontStyle{Mode: FontStyleDisabled}, ""
		}
		return FontStyle{Mode: FontStyleNamed, Name: raw}, ""

	case entity.CategoryRepeatableText:
		return TextItem{S: raw}, ""

	case entity.CategorySpecialNumber:
		if rules.AllowBoolean {
			switch {
			case strings.EqualFold(raw, "true"):
				return SpecialNumber{Kind: SpecialBool, B: true}, ""
			case strings.EqualFold(raw, "false"):
				return SpecialNumber{Kind: SpecialBool, B: false}, ""
			}
		}
		for _, f := range rules.SpecialFormats {
			if specialFormatRE(f).MatchString(raw) {
				return SpecialNumber{Kind: SpecialLiteral, Literal: raw}, ""
			}
		}
		n, ok := parseFinite(raw)
		if !ok {
			return nil, "must be a number" + describeFormats(rules)
		}
		return SpecialNumber{Kind: SpecialNumeric, N: n}, ""

	case entity.CategoryFontFamily:
		return FontFamily{Name: raw}, ""
	}

	return nil, fmt.Sprintf("unsupported value category %s", entry.Category)
}

// Validate applies the entry's constraints to an already decoded value.
func Validate(entry entity.SchemaEntry, v Value) error {
	return newError(entry.Key, v.String(), check(entry, v))
}

func check(entry entity.SchemaEntry, v Value) []string {
	rules := entry.Validation

	if u, ok := v.(Unparsed); ok {
		return []string{fmt.Sprintf("%q is not a valid %s value", u.Raw, entry.Category)}
	}
	if v.Category() != entry.Category {
		return []string{fmt.Sprintf("expected a %s value, got %s", entry.Category, v.Category())}
	}
	if _, ok := v.(Empty); ok {
		return nil
	}

	switch val := v.(type) {
	case Text:
		if rules.Pattern != "" && !compiled(rules.Pattern).MatchString(val.S) {
			return []string{"does not match the expected format " + rules.Pattern}
		}

	case Number:
		return checkNumber(rules, val.N)

	case Bool:

	case Enum:
		return checkEnum(rules, val)

	case Opacity:
		return checkRange(rules, val.N)

	case Path:
		if val.Path == "" || len(rules.Extensions) == 0 {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(val.Path))
		if !slices.ContainsFunc(rules.Extensions, func(e string) bool { return strings.EqualFold(e, ext) }) {
			return []string{"file must have one of the extensions " + strings.Join(rules.Extensions, ", ")}
		}

	case Color:

	case Keybind:
		return checkKeybind(rules, val)

	case Command:
		if strings.TrimSpace(val.Command) == "" && rules.DisallowEmpty {
			return []string{"command cannot be empty"}
		}

	case Adjustment:
		if val.Percent {
			return checkBounds(val.Amount, rules.MinPercentage, rules.MaxPercentage, "%")
		}
		return checkRange(rules, val.Amount)

	case Padding:
		var problems []string
		if val.Pair && !rules.AllowPair {
			problems = append(problems, "a padding pair is not allowed here")
		}
		problems = append(problems, checkRange(rules, val.First)...)
		if val.Pair {
			problems = append(problems, checkRange(rules, val.Second)...)
		}
		return problems

	case FontStyle:
		switch val.Mode {
		case FontStyleDisabled:
			if !rules.AllowDisable {
				return []string{"this style cannot be disabled"}
			}
		case FontStyleDefault:
			if !rules.AllowDefault {
				return []string{"default is not allowed here"}
			}
		default:
			if strings.TrimSpace(val.Name) == "" {
				return []string{"font style name cannot be empty"}
			}
		}

	case TextItem:
		return checkTextItem(rules, val.S)

	case SpecialNumber:
		if val.Kind == SpecialNumeric {
			return checkNumber(rules, val.N)
		}

	case FontFamily:
		return validation.ValidateFontFamily("font family", val.Name)
	}

	return nil
}

// Parse decodes and validates raw in one step. The returned value is usable
// even when err is non-nil.
func Parse(entry entity.SchemaEntry, raw string) (Value, error) {
	v, err := Decode(entry, raw)
	if err != nil {
		return v, err
	}
	return v, Validate(entry, v)
}

// Encode returns the canonical raw form of v.
func Encode(v Value) string {
	return v.String()
}

// Equal reports whether two decoded values are structurally equal.
func Equal(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}

// EqualLists compares two value lists element by element, in order.
func EqualLists(a, b []Value) bool {
	return slices.EqualFunc(a, b, Equal)
}

// Defaults decodes the schema default(s) of entry.
func Defaults(entry entity.SchemaEntry) ([]Value, error) {
	out := make([]Value, 0, len(entry.Default))
	for _, raw := range entry.Default {
		v, err := Parse(entry, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFinite(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func decodeEnum(rules entity.Validation, raw string) Enum {
	sep := rules.EnumSeparator()
	e := Enum{Separator: sep, Tokens: []EnumToken{}}
	if !rules.Multiselect {
		e.Tokens = append(e.Tokens, enumToken(rules, raw))
		return e
	}
	if strings.TrimSpace(raw) == "" {
		return e
	}
	for _, part := range strings.Split(raw, sep) {
		e.Tokens = append(e.Tokens, enumToken(rules, strings.TrimSpace(part)))
	}
	return e
}

func enumToken(rules entity.Validation, s string) EnumToken {
	if !rules.AllowNegation || enumMember(rules, s) {
		return EnumToken{Name: s}
	}
	if name, ok := strings.CutPrefix(s, NegationPrefix); ok && enumMember(rules, name) {
		return EnumToken{Name: name, Negated: true}
	}
	return EnumToken{Name: s}
}

func enumMember(rules entity.Validation, s string) bool {
	return slices.ContainsFunc(rules.Values, func(allowed string) bool {
		if rules.CaseSensitive {
			return allowed == s
		}
		return strings.EqualFold(allowed, s)
	})
}

func checkEnum(rules entity.Validation, e Enum) []string {
	if rules.AllowCustom {
		return nil
	}
	var problems []string
	for _, t := range e.Tokens {
		if t.Name == "" {
			problems = append(problems, "empty choice")
			continue
		}
		if !enumMember(rules, t.Name) {
			problems = append(problems, fmt.Sprintf("%q is not one of: %s", t.String(), strings.Join(rules.Values, ", ")))
		}
	}
	return problems
}

func checkNumber(rules entity.Validation, n float64) []string {
	problems := checkRange(rules, n)
	if rules.Integer && n != math.Trunc(n) {
		problems = append(problems, "must be a whole number")
	}
	if rules.Positive && n <= 0 {
		problems = append(problems, "must be greater than 0")
	}
	return problems
}

func checkRange(rules entity.Validation, n float64) []string {
	return checkBounds(n, rules.Min, rules.Max, rules.Unit)
}

func checkBounds(n float64, minimum, maximum *float64, unit string) []string {
	var problems []string
	if minimum != nil && n < *minimum {
		problems = append(problems, fmt.Sprintf("must be at least %s%s", formatNumber(*minimum), unit))
	}
	if maximum != nil && n > *maximum {
		problems = append(problems, fmt.Sprintf("must be at most %s%s", formatNumber(*maximum), unit))
	}
	return problems
}

func checkKeybind(rules entity.Validation, kb Keybind) []string {
	if kb.Clear {
		return nil
	}
	var problems []string
	for _, p := range kb.Prefixes {
		if len(rules.Prefixes) > 0 && !slices.Contains(rules.Prefixes, p) {
			problems = append(problems, "prefix "+p+" is not allowed")
		}
	}
	if rules.ForbidSequences && len(kb.Sequence) > 1 {
		problems = append(problems, "key sequences are not allowed")
	}
	for _, t := range kb.Sequence {
		for _, m := range t.Modifiers {
			if !validation.IsModifier(m) {
				problems = append(problems, "unknown modifier "+m)
			}
		}
		problems = append(problems, validation.ValidateTriggerKey(t.Key)...)
		if rules.RequireModifier && len(t.Modifiers) == 0 {
			problems = append(problems, "trigger "+t.String()+" needs a modifier")
		}
		if slices.ContainsFunc(rules.ForbiddenKeys, func(k string) bool { return strings.EqualFold(k, t.Key) }) {
			problems = append(problems, "key "+t.Key+" cannot be bound")
		}
	}
	return problems
}

func checkTextItem(rules entity.Validation, s string) []string {
	if s == "" {
		return nil
	}
	switch rules.Format {
	case FormatKeyValue:
		return validation.ValidateKeyValue(s)
	case FormatAssignment:
		return validation.ValidateAssignment(s)
	case FormatPalette:
		return validation.ValidatePaletteEntry(s)
	}
	if rules.Pattern != "" && !compiled(rules.Pattern).MatchString(s) {
		return []string{"does not match the expected format " + rules.Pattern}
	}
	return nil
}

const numberPattern = `[0-9]+(?:\.[0-9]+)?`

// specialFormatRE turns a format such as "precision:N,discrete:M" into a
// regular expression where N and M stand for non-negative numbers.
func specialFormatRE(format string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(format)
	quoted = strings.NewReplacer("N", numberPattern, "M", numberPattern).Replace(quoted)
	return compiled("^" + quoted + "$")
}

func describeFormats(rules entity.Validation) string {
	if len(rules.SpecialFormats) == 0 {
		return ""
	}
	return " or one of: " + strings.Join(rules.SpecialFormats, ", ")
}

var patternCache sync.Map

// compiled returns the cached regular expression for pattern.
// Schema patterns are checked at load time.
func compiled(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	patternCache.Store(pattern, re)
	return re
}
