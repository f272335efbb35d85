// Package cmd provides Cobra CLI commands for ghostedit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/cli"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile   string
	outputFormat string
	noBackup     bool

	rootCmd = &cobra.Command{
		Use:   "ghostedit",
		Short: "Edit the Ghostty config file without losing your comments",
		Long: `ghostedit - a structure-preserving editor for the Ghostty terminal config.

Values are validated against the Ghostty schema before they are written, and
every save keeps your comments, blank lines, ordering and unknown keys exactly
as they were. Only the lines you change are touched.

The config file defaults to the platform location
($XDG_CONFIG_HOME/ghostty/config on Linux). Use --file to edit another one.

Examples:
  ghostedit get font-size
  ghostedit set font-size 14
  ghostedit add keybind ctrl+shift+t=new_tab
  ghostedit reset cursor-style
  ghostedit schema font`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			switch outputFormat {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unsupported output format %q (use: text, json, yaml)", outputFormat)
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "file", "f", "", "Ghostty config file to edit (default: platform location)")
	flags.StringVarP(&outputFormat, "output", "o", outputText, "output format: text, json, yaml")
	flags.BoolVar(&noBackup, "no-backup", false, "do not copy the previous file to <file>.bak before saving")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		theme := styles.NewTheme()
		if app != nil {
			theme = app.Theme
		}
		fmt.Fprintln(os.Stderr, styles.NewEditorRenderer(theme).RenderError(err))
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
