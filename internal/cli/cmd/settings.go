package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/infrastructure/config"
)

var settingsSchema bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show ghostedit's own settings",
	Long: `Print the effective ghostedit settings (config.toml merged with
GHOSTEDIT_* environment variables) as TOML, or their JSON Schema with --schema.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().BoolVar(&settingsSchema, "schema", false, "print the JSON Schema of the settings file")
}

func runSettings(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if settingsSchema {
		data, err := config.SettingsJSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	if structured() {
		return emit(app.Config, nil)
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, string(data))
	return err
}
