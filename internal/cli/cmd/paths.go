package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/cli"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/infrastructure/filesystem"
	"github.com/bnema/ghostedit/internal/logging"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the files and directories ghostedit uses",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

type pathsOutput struct {
	GhosttyConfig string `json:"ghostty_config" yaml:"ghostty_config"`
	Backup        string `json:"backup" yaml:"backup"`
	Settings      string `json:"settings" yaml:"settings"`
	Database      string `json:"database" yaml:"database"`
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	ConfigDir     string `json:"config_dir" yaml:"config_dir"`
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	StateDir      string `json:"state_dir" yaml:"state_dir"`
	CacheDir      string `json:"cache_dir" yaml:"cache_dir"`
}

func runPaths(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := collectPaths(app)
	if err != nil {
		return err
	}

	return emit(out, func() string {
		return renderPaths(app.Theme, out)
	})
}

func collectPaths(app *cli.App) (pathsOutput, error) {
	ghostty, err := app.ConfigPath(configFile)
	if err != nil {
		return pathsOutput{}, err
	}

	out := pathsOutput{
		GhosttyConfig: ghostty,
		Backup:        filesystem.BackupPath(ghostty),
		Settings:      app.ConfigFile,
		Database:      app.Config.Database.Path,
	}
	if app.Config.Logging.LogDir != "" {
		out.LogFile = logging.LogFilePath(app.Config.Logging.LogDir)
	}

	for _, d := range []struct {
		dst *string
		fn  func() (string, error)
	}{
		{&out.ConfigDir, app.Paths.ConfigDir},
		{&out.DataDir, app.Paths.DataDir},
		{&out.StateDir, app.Paths.StateDir},
		{&out.CacheDir, app.Paths.CacheDir},
	} {
		dir, err := d.fn()
		if err != nil {
			return pathsOutput{}, fmt.Errorf("resolve directory: %w", err)
		}
		*d.dst = dir
	}
	return out, nil
}

func renderPaths(theme *styles.Theme, out pathsOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	rows := []struct {
		icon, label, path string
	}{
		{styles.IconConfig, "ghostty config", out.GhosttyConfig},
		{styles.IconSave, "backup", out.Backup},
		{styles.IconConfig, "settings", out.Settings},
		{styles.IconDatabase, "database", out.Database},
		{styles.IconLogs, "log file", out.LogFile},
		{styles.IconFolder, "config dir", out.ConfigDir},
		{styles.IconFolder, "data dir", out.DataDir},
		{styles.IconFolder, "state dir", out.StateDir},
		{styles.IconFolder, "cache dir", out.CacheDir},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.path == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			iconStyle.Render(r.icon),
			theme.Subtle.Render(fmt.Sprintf("%-15s", r.label)),
			theme.Normal.Render(r.path),
		))
	}
	return strings.Join(lines, "\n")
}
