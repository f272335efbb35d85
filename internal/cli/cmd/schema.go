package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/schema"
)

var (
	schemaTab        string
	schemaSection    string
	schemaPlatform   string
	schemaDefinition bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema [query]",
	Short: "Browse the Ghostty config keys",
	Long: `List the config keys ghostedit knows, with their types, defaults and
allowed values. A query fuzzy-matches key names, best match first.

Keys that only apply to another OS are hidden unless --platform is given
(editor.platform in the settings sets the default).

Examples:
  ghostedit schema                     # Every key for this OS
  ghostedit schema curs                # Fuzzy search
  ghostedit schema --tab appearance    # One tab
  ghostedit schema --platform all -o json
  ghostedit schema --definition        # Packaged TOML definition`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaTab, "tab", "", "only keys of this tab")
	schemaCmd.Flags().StringVar(&schemaSection, "section", "", "only keys of this section")
	schemaCmd.Flags().StringVar(&schemaPlatform, "platform", "", "auto, all, macos, linux or windows")
	schemaCmd.Flags().BoolVar(&schemaDefinition, "definition", false, "print the packaged schema definition (TOML)")
}

func runSchema(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if schemaDefinition {
		_, err := stdout.Write(schema.Definition())
		return err
	}

	in := usecase.GetConfigSchemaInput{
		Tab:      schemaTab,
		Section:  schemaSection,
		Platform: app.Platform(strings.ToLower(schemaPlatform)),
	}
	if len(args) == 1 {
		in.Query = args[0]
	}

	result, err := app.NewSchemaUseCase().Execute(app.Ctx(), in)
	if err != nil {
		return err
	}

	return emit(result.Keys, func() string {
		return styles.NewSchemaRenderer(app.Theme).Render(result.Keys)
	})
}
