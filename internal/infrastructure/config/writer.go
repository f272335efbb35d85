package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// settingsHeader points TOML language servers at the generated schema.
const settingsHeader = "#:schema ./" + schemaFileName + "\n# ghostedit settings. Environment variables GHOSTEDIT_* override these values.\n\n"

var sectionRegex = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the settings to disk with consistent ordering.
// - Struct fields are written in definition order (go-toml v2 behavior)
// - TOML sections are sorted alphabetically for deterministic output
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EncodeConfig renders the settings as TOML with the schema header.
func EncodeConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(settingsHeader + sortTOMLSections(buf.String())), nil
}

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var sections []section
	var current *section
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		switch match := sectionRegex.FindStringSubmatch(line); {
		case match != nil:
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
		case current != nil:
			current.lines = append(current.lines, line)
		default:
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		result.WriteString(line)
		result.WriteString("\n")
	}
	for _, sec := range sections {
		// One blank line between sections; drop trailing blanks carried from the encoder.
		body := strings.TrimRight(strings.Join(sec.lines, "\n"), "\n")
		if s := result.String(); s != "" && !strings.HasSuffix(s, "\n\n") {
			result.WriteString("\n")
		}
		result.WriteString(body)
		result.WriteString("\n")
	}

	output := strings.TrimRight(result.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return strings.TrimLeft(output, "\n")
}
