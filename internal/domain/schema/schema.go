// Package schema holds the static description of every recognized
// configuration key. The packaged definition is decoded once per process and
// is read-only afterwards.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/value"
)

//go:embed schema.toml
var definition []byte

// ErrInvalidSchema matches every *LoadError.
var ErrInvalidSchema = errors.New("invalid schema definition")

// LoadError reports why a schema definition was rejected.
type LoadError struct {
	Problems []string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrInvalidSchema, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSchema, strings.Join(e.Problems, "; "))
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidSchema) succeed.
func (e *LoadError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Tab groups sections for navigation.
type Tab struct {
	Name     string
	Sections []Section
}

// Section lists keys in display order.
type Section struct {
	Name string
	Keys []string
}

// Schema is an immutable, validated set of schema entries.
type Schema struct {
	entries []entity.SchemaEntry
	index   map[string]int
	tabs    []Tab
}

type definitionFile struct {
	Tabs []tabDef `toml:"tab"`
}

type tabDef struct {
	Name     string       `toml:"name"`
	Sections []sectionDef `toml:"section"`
}

type sectionDef struct {
	Name string   `toml:"name"`
	Keys []keyDef `toml:"key"`
}

type keyDef struct {
	Key         string            `toml:"key"`
	Label       string            `toml:"label"`
	Description string            `toml:"description"`
	Category    string            `toml:"category"`
	Repeatable  bool              `toml:"repeatable"`
	Default     []string          `toml:"default"`
	Platforms   []string          `toml:"platforms"`
	Validation  entity.Validation `toml:"validation"`
}

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
	defaultErr    error
)

// Default returns the packaged schema, loading it on first use.
func Default() (*Schema, error) {
	defaultOnce.Do(func() {
		defaultSchema, defaultErr = Load(definition)
	})
	return defaultSchema, defaultErr
}

// MustDefault returns the packaged schema and panics if it is corrupt.
func MustDefault() *Schema {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// Definition returns the raw packaged definition.
func Definition() []byte {
	return slices.Clone(definition)
}

// Load decodes and validates a schema definition.
func Load(data []byte) (*Schema, error) {
	var file definitionFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Err: err}
	}

	s := &Schema{index: make(map[string]int)}
	caser := cases.Title(language.English)
	var problems []string

	for _, td := range file.Tabs {
		tab := Tab{Name: td.Name}
		for _, sd := range td.Sections {
			section := Section{Name: sd.Name}
			for _, kd := range sd.Keys {
				entry, errs := buildEntry(kd, td.Name, sd.Name, caser)
				problems = append(problems, errs...)
				if entry.Key == "" {
					continue
				}
				if _, dup := s.index[entry.Key]; dup {
					problems = append(problems, fmt.Sprintf("%s: duplicate key", entry.Key))
					continue
				}
				s.index[entry.Key] = len(s.entries)
				s.entries = append(s.entries, entry)
				section.Keys = append(section.Keys, entry.Key)
			}
			tab.Sections = append(tab.Sections, section)
		}
		s.tabs = append(s.tabs, tab)
	}

	if len(s.entries) == 0 {
		problems = append(problems, "definition has no keys")
	}
	if len(problems) > 0 {
		return nil, &LoadError{Problems: problems}
	}
	return s, nil
}

func buildEntry(kd keyDef, tab, section string, caser cases.Caser) (entity.SchemaEntry, []string) {
	var problems []string
	if strings.TrimSpace(kd.Key) == "" {
		return entity.SchemaEntry{}, []string{fmt.Sprintf("%s/%s: key without a name", tab, section)}
	}

	entry := entity.SchemaEntry{
		Key:         kd.Key,
		Label:       kd.Label,
		Description: kd.Description,
		Repeatable:  kd.Repeatable,
		Default:     kd.Default,
		Validation:  kd.Validation,
		Tab:         tab,
		Section:     section,
	}
	if entry.Label == "" {
		entry.Label = caser.String(strings.ReplaceAll(kd.Key, "-", " "))
	}

	category, err := entity.ParseValueCategory(kd.Category)
	if err != nil {
		return entity.SchemaEntry{}, []string{fmt.Sprintf("%s: %v", kd.Key, err)}
	}
	entry.Category = category

	for _, p := range kd.Platforms {
		platform := entity.Platform(p)
		switch platform {
		case entity.PlatformMacOS, entity.PlatformLinux, entity.PlatformWindows:
			entry.Platforms = append(entry.Platforms, platform)
		default:
			problems = append(problems, fmt.Sprintf("%s: unknown platform %q", kd.Key, p))
		}
	}
	if len(kd.Platforms) == 0 {
		entry.Platforms = inferPlatforms(kd.Key)
	}

	problems = append(problems, checkEntry(entry)...)
	return entry, problems
}

func inferPlatforms(key string) []entity.Platform {
	switch {
	case strings.HasPrefix(key, "macos-"):
		return []entity.Platform{entity.PlatformMacOS}
	case strings.HasPrefix(key, "gtk-"), strings.HasPrefix(key, "linux-"), strings.HasPrefix(key, "x11-"):
		return []entity.Platform{entity.PlatformLinux}
	}
	return nil
}

func checkEntry(e entity.SchemaEntry) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, e.Key+": "+fmt.Sprintf(format, args...))
	}

	rules := e.Validation
	switch e.Category {
	case entity.CategoryEnum:
		if len(rules.Values) == 0 && !rules.AllowCustom {
			add("enumerated key has no allowed values")
		}
	case entity.CategoryOpacity:
		if rules.Min == nil && rules.Max == nil {
			add("opacity key has no bounds")
		}
	case entity.CategoryRepeatableText, entity.CategoryKeybinding:
		if !e.Repeatable {
			add("%s keys must be repeatable", e.Category)
		}
	}
	if e.Category == entity.CategoryRepeatableText {
		switch rules.Format {
		case "", value.FormatPlain, value.FormatKeyValue, value.FormatAssignment, value.FormatPalette:
		default:
			add("unknown element format %q", rules.Format)
		}
	}

	if rules.Min != nil && rules.Max != nil && *rules.Min > *rules.Max {
		add("min is greater than max")
	}
	if !e.Repeatable && len(e.Default) > 1 {
		add("only repeatable keys may have several defaults")
	}

	if rules.Pattern != "" {
		if _, err := regexp.Compile(rules.Pattern); err != nil {
			add("bad pattern: %v", err)
			return problems
		}
	}
	if _, err := value.Defaults(e); err != nil {
		add("default does not validate: %v", err)
	}
	return problems
}

// Lookup returns the entry for key.
func (s *Schema) Lookup(key string) (entity.SchemaEntry, bool) {
	i, ok := s.index[key]
	if !ok {
		return entity.SchemaEntry{}, false
	}
	return s.entries[i], true
}

// Len returns the number of keys.
func (s *Schema) Len() int {
	return len(s.entries)
}

// Entries returns all entries in definition order.
func (s *Schema) Entries() []entity.SchemaEntry {
	return slices.Clone(s.entries)
}

// Keys returns all keys in definition order.
func (s *Schema) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Tabs returns the navigation grouping.
func (s *Schema) Tabs() []Tab {
	out := make([]Tab, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = Tab{Name: t.Name, Sections: make([]Section, len(t.Sections))}
		for j, sec := range t.Sections {
			out[i].Sections[j] = Section{Name: sec.Name, Keys: slices.Clone(sec.Keys)}
		}
	}
	return out
}

// ForPlatform returns the entries that apply to p.
func (s *Schema) ForPlatform(p entity.Platform) []entity.SchemaEntry {
	var out []entity.SchemaEntry
	for _, e := range s.entries {
		if e.AppliesTo(p) {
			out = append(out, e)
		}
	}
	return out
}

// Suggest returns the known key closest to an unknown one, if any looks related.
// It matches abbreviations ("bg-opacity") and keys with extra characters ("font-sizes").
func (s *Schema) Suggest(unknown string) (string, bool) {
	if unknown == "" {
		return "", false
	}
	keys := s.Keys()

	if matches := fuzzy.Find(unknown, keys); len(matches) > 0 {
		return matches[0].Str, true
	}

	var contained []string
	for _, k := range keys {
		if len(fuzzy.Find(k, []string{unknown})) > 0 {
			contained = append(contained, k)
		}
	}
	if len(contained) == 0 {
		return "", false
	}
	sort.SliceStable(contained, func(i, j int) bool { return len(contained[i]) > len(contained[j]) })
	return contained[0], true
}

// CurrentPlatform maps the running OS to a schema platform.
func CurrentPlatform() entity.Platform {
	switch runtime.GOOS {
	case "darwin":
		return entity.PlatformMacOS
	case "windows":
		return entity.PlatformWindows
	default:
		return entity.PlatformLinux
	}
}
