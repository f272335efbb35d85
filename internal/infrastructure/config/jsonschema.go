package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// SettingsJSONSchema returns the JSON Schema describing config.toml.
func SettingsJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/ghostedit/config.schema.json"
	schema.Title = "ghostedit settings"
	schema.Description = "Settings for ghostedit, a round-trip editor for Ghostty configuration files"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to config.toml in configDir.
// This is called automatically when a default config is created.
func GenerateSchemaFile(configDir string) error {
	data, err := SettingsJSONSchema()
	if err != nil {
		return err
	}

	schemaFile := filepath.Join(configDir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
