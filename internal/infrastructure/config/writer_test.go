package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			sections = append(sections, trimmed)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(content), "#:schema ./config.schema.json\n"))
	assert.Equal(t, []string{"[database]", "[editor]", "[logging]"}, sectionHeaders(string(content)))

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().Editor, decoded.Editor)
	assert.Equal(t, DefaultConfig().Database.RecentLimit, decoded.Database.RecentLimit)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestSortTOMLSections(t *testing.T) {
	input := `top = 1

[logging]
level = 'warn'

[editor]
backup = true

[logging.file]
max_size_mb = 5

[database]
recent_limit = 20
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[database]", "[editor]", "[logging]", "[logging.file]"}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "top = 1\n"))
	assert.True(t, strings.HasSuffix(result, "max_size_mb = 5\n"))
	assert.NotContains(t, result, "\n\n\n")
}
