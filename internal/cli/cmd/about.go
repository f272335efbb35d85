package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/build"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display the version, build details and the number of Ghostty keys ghostedit knows.`,
	RunE:  runAbout,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(versionCmd)
}

type aboutOutput struct {
	build.Info   `yaml:",inline"`
	SchemaKeys   int      `json:"schema_keys" yaml:"schema_keys"`
	Repository   string   `json:"repository" yaml:"repository"`
	Contributors []string `json:"contributors" yaml:"contributors"`
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := aboutOutput{
		Info:         app.BuildInfo,
		SchemaKeys:   app.Schema.Len(),
		Repository:   build.RepoURL(),
		Contributors: build.Contributors(),
	}
	return emit(out, func() string {
		return styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, out.SchemaKeys)
	})
}

func runVersion(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return emit(app.BuildInfo, func() string {
		return "ghostedit " + app.BuildInfo.Version
	})
}
