package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/domain/build"
)

// runCLI executes the root command against isolated XDG directories and
// returns what the command printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("GHOSTEDIT_LOG_LEVEL", "error")

	configFile, outputFormat, noBackup = "", outputText, false
	editDryRun, editForce, getWarnings = false, false, false
	schemaTab, schemaSection, schemaPlatform, schemaDefinition = "", "", "", false
	recentLimit, checkJobs, settingsSchema = 0, 0, false

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeGhosttyConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSet_PreservesCommentsAndWritesBackup(t *testing.T) {
	original := "# my font\nfont-size = 12\n\n# theme\nbackground = #000000\n"
	path := writeGhosttyConfig(t, original)

	_, err := runCLI(t, "-f", path, "set", "font-size", "14")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# my font\nfont-size = 14\n\n# theme\nbackground = #000000\n", string(data))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))
}

func TestSet_DryRunLeavesFileAlone(t *testing.T) {
	original := "font-size = 12\n"
	path := writeGhosttyConfig(t, original)

	out, err := runCLI(t, "-f", path, "set", "--dry-run", "font-size", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "font-size")
	assert.Contains(t, out, "dry run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
	assert.NoFileExists(t, path+".bak")
}

func TestSet_WarnsAboutCommentsInsideRewrittenBlock(t *testing.T) {
	path := writeGhosttyConfig(t, "palette = 0=#000000\n# bright red\npalette = 9=#ff0000\n")

	out, err := runCLI(t, "-f", path, "set", "palette", "0=#111111", "9=#ee0000")
	require.NoError(t, err)
	assert.Contains(t, out, "Comments that may no longer match")
	assert.Contains(t, out, "palette list")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "palette = 0=#111111\npalette = 9=#ee0000\n# bright red\n", string(data))
}

func TestSet_JSONSummaryListsStaleComments(t *testing.T) {
	path := writeGhosttyConfig(t, "palette = 0=#000000\n# bright red\npalette = 9=#ff0000\n")

	out, err := runCLI(t, "-f", path, "-o", "json", "unset", "palette")
	require.NoError(t, err)

	var got struct {
		Saved   bool `json:"saved"`
		Summary struct {
			StaleComments []struct {
				Line int    `json:"line"`
				Key  string `json:"key"`
			} `json:"stale_comments"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Saved)
	require.Len(t, got.Summary.StaleComments, 1)
	assert.Equal(t, 2, got.Summary.StaleComments[0].Line)
	assert.Equal(t, "palette", got.Summary.StaleComments[0].Key)
}

func TestSet_NoBackupFlag(t *testing.T) {
	path := writeGhosttyConfig(t, "font-size = 12\n")

	_, err := runCLI(t, "-f", path, "--no-backup", "set", "font-size", "13.5")
	require.NoError(t, err)
	assert.NoFileExists(t, path+".bak")
}

func TestSet_UnknownKey(t *testing.T) {
	path := writeGhosttyConfig(t, "")

	_, err := runCLI(t, "-f", path, "set", "font-sise", "14")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrUnknownKey)
	assert.Contains(t, err.Error(), `did you mean "font-size"`)
}

func TestSet_InvalidValueRejected(t *testing.T) {
	original := "font-size = 12\n"
	path := writeGhosttyConfig(t, original)

	_, err := runCLI(t, "-f", path, "set", "cursor-style", "triangle")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestAddUnsetReset(t *testing.T) {
	path := writeGhosttyConfig(t, "# keys\nkeybind = ctrl+a=select_all\ncursor-style = bar\n")

	_, err := runCLI(t, "-f", path, "add", "keybind", "ctrl+shift+t=new_tab")
	require.NoError(t, err)
	data, _ := os.ReadFile(path)
	assert.Contains(t, string(data), "keybind = ctrl+a=select_all\nkeybind = ctrl+shift+t=new_tab\n")

	_, err = runCLI(t, "-f", path, "reset", "cursor-style")
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "cursor-style = block\n")

	_, err = runCLI(t, "-f", path, "unset", "keybind")
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.NotContains(t, string(data), "keybind")
	assert.Contains(t, string(data), "# keys\n")
}

func TestGet_JSONIncludesDefaults(t *testing.T) {
	path := writeGhosttyConfig(t, "font-size = 12\n")

	out, err := runCLI(t, "-f", path, "-o", "json", "get", "font-size", "cursor-style")
	require.NoError(t, err)

	var got getOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, path, got.Path)
	assert.True(t, got.Exists)
	require.Len(t, got.Values, 2)
	assert.Equal(t, []string{"12"}, got.Values[0].Values)
	assert.False(t, got.Values[0].Default)
	assert.Equal(t, []string{"block"}, got.Values[1].Values)
	assert.True(t, got.Values[1].Default)
}

func TestGet_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	out, err := runCLI(t, "-f", path, "get")
	require.NoError(t, err)
	assert.Contains(t, out, "new file")
	assert.NoFileExists(t, path)
}

func TestDiff_AgainstBackup(t *testing.T) {
	path := writeGhosttyConfig(t, "font-size = 12\n")
	_, err := runCLI(t, "-f", path, "set", "font-size", "14")
	require.NoError(t, err)

	out, err := runCLI(t, "-f", path, "-o", "yaml", "diff")
	require.NoError(t, err)

	var got struct {
		Changes []struct {
			Type string   `yaml:"type"`
			Key  string   `yaml:"key"`
			Old  []string `yaml:"old"`
			New  []string `yaml:"new"`
		} `yaml:"changes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Changes, 1)
	assert.Equal(t, "modified", got.Changes[0].Type)
	assert.Equal(t, "font-size", got.Changes[0].Key)
	assert.Equal(t, []string{"12"}, got.Changes[0].Old)
	assert.Equal(t, []string{"14"}, got.Changes[0].New)
}

func TestCheck_FailsOnWarnings(t *testing.T) {
	clean := writeGhosttyConfig(t, "font-size = 12\n")
	dirty := writeGhosttyConfig(t, "font-size = 12\nnot a directive\nfont-size = huge\n")

	out, err := runCLI(t, "check", clean)
	require.NoError(t, err)
	assert.Contains(t, out, "clean")

	_, err = runCLI(t, "check", clean, dirty)
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestRecent_ListsOpenedFiles(t *testing.T) {
	path := writeGhosttyConfig(t, "font-size = 12\n")

	// Each runCLI gets a fresh home; pin the database so the runs share it.
	db := filepath.Join(t.TempDir(), "recent.sqlite")
	t.Setenv("GHOSTEDIT_DATABASE_PATH", db)

	_, err := runCLI(t, "-f", path, "get")
	require.NoError(t, err)

	out, err := runCLI(t, "-o", "json", "recent")
	require.NoError(t, err)

	var files []struct {
		Path      string `json:"path"`
		OpenCount int64  `json:"open_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
	assert.Equal(t, int64(1), files[0].OpenCount)

	_, err = runCLI(t, "recent", "forget", path)
	require.NoError(t, err)
	out, err = runCLI(t, "-o", "json", "recent")
	require.NoError(t, err)
	files = nil
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	assert.Empty(t, files)
}

func TestSchema_QueryAndPlatform(t *testing.T) {
	out, err := runCLI(t, "-o", "json", "schema", "--platform", "all", "cursor-style")
	require.NoError(t, err)

	var keys []struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	require.NotEmpty(t, keys)
	assert.Equal(t, "cursor-style", keys[0].Key)
}

func TestSchema_Definition(t *testing.T) {
	out, err := runCLI(t, "schema", "--definition")
	require.NoError(t, err)
	assert.Contains(t, out, "[[tab.section.key]]")
	assert.Contains(t, out, `key = "font-size"`)
}

func TestUnsupportedOutputFormat(t *testing.T) {
	_, err := runCLI(t, "-o", "xml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestAbout_JSON(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123"})

	out, err := runCLI(t, "-o", "json", "about")
	require.NoError(t, err)

	var got struct {
		Version    string `json:"version"`
		Commit     string `json:"commit"`
		SchemaKeys int    `json:"schema_keys"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, "abc123", got.Commit)
	assert.Positive(t, got.SchemaKeys)
}

func TestSettings_PrintsTOML(t *testing.T) {
	out, err := runCLI(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "[editor]")
	assert.Contains(t, out, "[logging]")
}
