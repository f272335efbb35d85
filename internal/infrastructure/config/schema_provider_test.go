package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/schema"
)

func findKey(t *testing.T, keys []entity.ConfigKeyInfo, key string) entity.ConfigKeyInfo {
	t.Helper()
	for _, k := range keys {
		if k.Key == key {
			return k
		}
	}
	require.Failf(t, "key not found", "%s", key)
	return entity.ConfigKeyInfo{}
}

func TestSchemaProvider_GetSchema(t *testing.T) {
	s := schema.MustDefault()
	keys := NewSchemaProvider(s).GetSchema()

	require.Len(t, keys, s.Len())
	assert.Equal(t, s.Keys()[0], keys[0].Key)

	fontSize := findKey(t, keys, "font-size")
	assert.Equal(t, "number", fontSize.Type)
	assert.Equal(t, "13", fontSize.Default)
	assert.Equal(t, "1-500 pt", fontSize.Range)
	assert.Equal(t, "Appearance", fontSize.Tab)
	assert.Equal(t, "Font", fontSize.Section)

	cursor := findKey(t, keys, "cursor-style")
	assert.Equal(t, "enum", cursor.Type)
	assert.Contains(t, cursor.Values, "underline")
	assert.Empty(t, cursor.Range)

	assert.True(t, findKey(t, keys, "keybind").Repeatable)
}

func TestFormatRange(t *testing.T) {
	zero, one, half := 0.0, 1.0, 0.5

	tests := []struct {
		name string
		v    entity.Validation
		want string
	}{
		{name: "none", v: entity.Validation{}, want: ""},
		{name: "both bounds", v: entity.Validation{Min: &zero, Max: &one}, want: "0-1"},
		{name: "min only", v: entity.Validation{Min: &half}, want: ">= 0.5"},
		{name: "max only with unit", v: entity.Validation{Max: &one, Unit: "s"}, want: "<= 1 s"},
		{name: "positive", v: entity.Validation{Positive: true}, want: "> 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRange(tt.v))
		})
	}
}
