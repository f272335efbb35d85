package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

func TestDefaultSchemaLoads(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	assert.Greater(t, s.Len(), 80)
	assert.Same(t, s, MustDefault())
}

func TestDefaultSchemaCoversEveryCategory(t *testing.T) {
	seen := make(map[entity.ValueCategory]bool)
	for _, e := range MustDefault().Entries() {
		seen[e.Category] = true
	}
	for _, c := range entity.AllCategories() {
		assert.True(t, seen[c], "no key uses category %s", c)
	}
}

func TestLookup(t *testing.T) {
	s := MustDefault()

	e, ok := s.Lookup("font-size")
	require.True(t, ok)
	assert.Equal(t, entity.CategoryNumber, e.Category)
	assert.Equal(t, []string{"13"}, e.Default)
	assert.Equal(t, "Font Size", e.Label)
	assert.Equal(t, "Appearance", e.Tab)
	assert.Equal(t, "Font", e.Section)
	require.NotNil(t, e.Validation.Min)
	assert.Equal(t, 1.0, *e.Validation.Min)

	e, ok = s.Lookup("palette")
	require.True(t, ok)
	assert.True(t, e.Repeatable)
	assert.Equal(t, entity.CategoryRepeatableText, e.Category)

	e, ok = s.Lookup("cursor-style")
	require.True(t, ok)
	assert.Equal(t, "Cursor Style", e.Label)

	_, ok = s.Lookup("no-such-key")
	assert.False(t, ok)
}

func TestPlatforms(t *testing.T) {
	s := MustDefault()

	e, _ := s.Lookup("macos-titlebar-style")
	assert.Equal(t, []entity.Platform{entity.PlatformMacOS}, e.Platforms)

	e, _ = s.Lookup("gtk-titlebar")
	assert.Equal(t, []entity.Platform{entity.PlatformLinux}, e.Platforms)

	e, _ = s.Lookup("x11-instance-name")
	assert.Equal(t, []entity.Platform{entity.PlatformLinux}, e.Platforms)

	e, _ = s.Lookup("font-size")
	assert.Empty(t, e.Platforms)

	var macKeys []string
	for _, e := range s.ForPlatform(entity.PlatformMacOS) {
		macKeys = append(macKeys, e.Key)
	}
	assert.Contains(t, macKeys, "macos-titlebar-style")
	assert.Contains(t, macKeys, "font-size")
	assert.NotContains(t, macKeys, "gtk-titlebar")
}

func TestTabs(t *testing.T) {
	tabs := MustDefault().Tabs()
	require.NotEmpty(t, tabs)
	assert.Equal(t, "Appearance", tabs[0].Name)
	require.NotEmpty(t, tabs[0].Sections)
	assert.Equal(t, "Font", tabs[0].Sections[0].Name)
	assert.Equal(t, "font-family", tabs[0].Sections[0].Keys[0])

	tabs[0].Sections[0].Keys[0] = "mutated"
	assert.Equal(t, "font-family", MustDefault().Tabs()[0].Sections[0].Keys[0])
}

func TestSuggest(t *testing.T) {
	s := MustDefault()

	got, ok := s.Suggest("font-sizes")
	require.True(t, ok)
	assert.Equal(t, "font-size", got)

	got, ok = s.Suggest("cursor-colour")
	require.True(t, ok)
	assert.Equal(t, "cursor-color", got)

	_, ok = s.Suggest("zzzz")
	assert.False(t, ok)
}

func TestLoadRejectsInconsistentDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  string
		want string
	}{
		{
			name: "unknown category",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='colour'\n",
			want: "unknown value category",
		},
		{
			name: "enum without values",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='enum'\n",
			want: "no allowed values",
		},
		{
			name: "duplicate key",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='text'\n[[tab.section.key]]\nkey='k'\ncategory='text'\n",
			want: "duplicate key",
		},
		{
			name: "opacity without bounds",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='opacity'\n",
			want: "no bounds",
		},
		{
			name: "invalid default",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='number'\ndefault=['big']\n",
			want: "default does not validate",
		},
		{
			name: "bad pattern",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='text'\nvalidation={pattern='('}\n",
			want: "bad pattern",
		},
		{
			name: "repeatable text must repeat",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='repeatable-text'\n",
			want: "must be repeatable",
		},
		{
			name: "unknown element format",
			def:  "[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='k'\ncategory='repeatable-text'\nrepeatable=true\nvalidation={format='csv'}\n",
			want: "unknown element format",
		},
		{
			name: "empty",
			def:  "",
			want: "no keys",
		},
		{
			name: "not toml",
			def:  "[[tab",
			want: "invalid schema definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load([]byte(tt.def))
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.want)

			var loadErr *LoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}

func TestLoadGeneratesLabels(t *testing.T) {
	s, err := Load([]byte("[[tab]]\nname='A'\n[[tab.section]]\nname='S'\n[[tab.section.key]]\nkey='window-padding-balance'\ncategory='boolean'\n"))
	require.NoError(t, err)
	e, ok := s.Lookup("window-padding-balance")
	require.True(t, ok)
	assert.Equal(t, "Window Padding Balance", e.Label)
}
