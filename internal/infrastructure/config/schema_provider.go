package config

import (
	"strconv"
	"strings"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/schema"
)

// SchemaProvider implements port.ConfigSchemaProvider over the Ghostty key schema.
type SchemaProvider struct {
	schema *schema.Schema
}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider(s *schema.Schema) *SchemaProvider {
	return &SchemaProvider{schema: s}
}

// GetSchema returns all configuration keys with their metadata, in display order.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	entries := p.schema.Entries()
	keys := make([]entity.ConfigKeyInfo, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, keyInfo(e))
	}
	return keys
}

func keyInfo(e entity.SchemaEntry) entity.ConfigKeyInfo {
	return entity.ConfigKeyInfo{
		Key:         e.Key,
		Label:       e.Label,
		Type:        e.Category.String(),
		Default:     strings.Join(e.Default, "\n"),
		Description: e.Description,
		Values:      e.Validation.Values,
		Range:       formatRange(e.Validation),
		Repeatable:  e.Repeatable,
		Platforms:   e.Platforms,
		Tab:         e.Tab,
		Section:     e.Section,
	}
}

// formatRange renders numeric bounds as "1-500 pt", ">= 0", "<= 1" or "> 0".
func formatRange(v entity.Validation) string {
	var r string
	switch {
	case v.Min != nil && v.Max != nil:
		r = formatFloat(*v.Min) + "-" + formatFloat(*v.Max)
	case v.Min != nil:
		r = ">= " + formatFloat(*v.Min)
	case v.Max != nil:
		r = "<= " + formatFloat(*v.Max)
	case v.Positive:
		r = "> 0"
	default:
		return ""
	}
	if v.Unit != "" {
		r += " " + v.Unit
	}
	return r
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
