package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/infrastructure/filesystem"
)

var diffCmd = &cobra.Command{
	Use:   "diff [old-file]",
	Short: "Show what changed since the last save",
	Long: `Compare the config file with its backup (<file>.bak), which holds the
content before the last save. Pass another file to compare against it instead.

Examples:
  ghostedit diff                       # Changes made by the last save
  ghostedit diff ~/ghostty-config.old  # Changes since an older copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

type diffOutput struct {
	From    string           `json:"from" yaml:"from"`
	To      string           `json:"to" yaml:"to"`
	Changes []port.KeyChange `json:"changes" yaml:"changes"`
}

func runDiff(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := app.ConfigPath(configFile)
	if err != nil {
		return err
	}
	from := filesystem.BackupPath(path)
	if len(args) == 1 {
		from = args[0]
	}

	result, err := app.NewDiffUseCase().Execute(app.Ctx(), usecase.DiffConfigInput{From: from, To: path})
	if err != nil {
		return err
	}

	out := diffOutput{From: from, To: path, Changes: result.Changes}
	return emit(out, func() string {
		text := styles.NewEditorRenderer(app.Theme).RenderDiff(result.Diff)
		if !result.FromExists {
			text = app.Theme.Subtle.Render(from+" does not exist; showing every key as added") + "\n\n" + text
		}
		return text
	})
}
