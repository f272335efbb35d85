package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/logging"
)

var (
	editDryRun bool
	editForce  bool
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>...",
	Short: "Set a config value",
	Long: `Set a key to a new value and save the file.

Repeatable keys such as keybind or font-family take every value at once and
replace the whole list. Use 'ghostedit add' to append a single entry instead.
An empty string sets the key to an empty value.

Examples:
  ghostedit set font-size 14
  ghostedit set background '#1e1e2e'
  ghostedit set font-family "JetBrains Mono" "Symbols Nerd Font"
  ghostedit set --dry-run cursor-style block`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runEdit(func(ctx context.Context, uc *usecase.EditConfigUseCase) error {
			return uc.UpdateValue(ctx, args[0], args[1:]...)
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <key> <value>",
	Short: "Append a value to a repeatable key",
	Long: `Append one entry to a repeatable key and save the file.
On keys that are not repeatable it behaves like 'set'.

Examples:
  ghostedit add keybind ctrl+shift+t=new_tab
  ghostedit add font-feature -calt`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runEdit(func(ctx context.Context, uc *usecase.EditConfigUseCase) error {
			return uc.AppendValue(ctx, args[0], args[1])
		})
	},
}

var unsetCmd = &cobra.Command{
	Use:     "unset <key>...",
	Aliases: []string{"rm"},
	Short:   "Remove keys from the config file",
	Long: `Remove every line setting the given keys. Ghostty then uses its defaults.
Comments above the removed lines are kept.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runEdit(func(ctx context.Context, uc *usecase.EditConfigUseCase) error {
			for _, key := range args {
				if err := uc.RemoveValue(ctx, key); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <key>...",
	Short: "Reset keys to their schema defaults",
	Long: `Write the schema default of each key into the file. Keys without a
default are removed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runEdit(func(ctx context.Context, uc *usecase.EditConfigUseCase) error {
			for _, key := range args {
				if err := uc.ResetToDefault(ctx, key); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{setCmd, addCmd, unsetCmd, resetCmd} {
		c.Flags().BoolVarP(&editDryRun, "dry-run", "n", false, "show the pending changes without saving")
		c.Flags().BoolVar(&editForce, "force", false, "overwrite the file even if it changed on disk")
		rootCmd.AddCommand(c)
	}
}

var errSaveAborted = errors.New("save aborted, nothing was written")

type editFunc func(ctx context.Context, uc *usecase.EditConfigUseCase) error

type editOutput struct {
	Path    string                 `json:"path" yaml:"path"`
	Backup  string                 `json:"backup,omitempty" yaml:"backup,omitempty"`
	Saved   bool                   `json:"saved" yaml:"saved"`
	Changes []port.KeyChange       `json:"changes" yaml:"changes"`
	Preview string                 `json:"preview,omitempty" yaml:"preview,omitempty"`
	Summary *usecase.ChangeSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// runEdit loads the config file, applies edit and saves the result. When
// the file changed on disk in the meantime the user picks between
// overwriting it, reloading it and reapplying edit, or aborting.
func runEdit(edit editFunc) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := app.ConfigPath(configFile)
	if err != nil {
		return err
	}
	ctx := logging.WithPath(app.Ctx(), path)
	uc := app.NewEditUseCase(noBackup)
	force := editForce

	for {
		if _, err := uc.LoadFile(ctx, usecase.LoadInput{Path: path, CreateIfMissing: true}); err != nil {
			return err
		}
		if err := edit(ctx, uc); err != nil {
			return err
		}

		changes, err := uc.KeyChanges(ctx)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return emit(editOutput{Path: path, Changes: changes}, func() string {
				return styles.NewEditorRenderer(app.Theme).RenderNoChanges(path)
			})
		}

		summary, err := uc.GetChangeSummary(ctx)
		if err != nil {
			return err
		}
		if editDryRun {
			return emitPreview(ctx, app, uc, path, changes, summary)
		}
		if len(summary.StaleComments) > 0 {
			logging.FromContext(ctx).Warn().Int("count", len(summary.StaleComments)).
				Msg("saving over blocks with interior comments")
			if !structured() {
				fmt.Fprintln(stdout, renderStaleComments(app, summary.StaleComments))
			}
			if !confirmStaleComments(app, path) {
				return errSaveAborted
			}
		}

		saved, err := uc.SaveFile(ctx, usecase.SaveInput{Force: force})
		if errors.Is(err, usecase.ErrStaleFile) {
			switch resolveConflict(app, path) {
			case conflictOverwrite:
				saved, err = uc.SaveFile(ctx, usecase.SaveInput{Force: true})
			case conflictReload:
				logging.FromContext(ctx).Info().Msg("reloading config file and reapplying edit")
				continue
			default:
				if !structured() {
					fmt.Fprintln(stdout, styles.NewEditorRenderer(app.Theme).RenderStale(path))
				}
				return err
			}
		}
		if err != nil {
			return err
		}

		out := editOutput{
			Path:    saved.Path,
			Backup:  saved.BackupPath,
			Saved:   saved.Written,
			Changes: changes,
			Summary: &summary,
		}
		return emit(out, func() string {
			r := styles.NewEditorRenderer(app.Theme)
			return r.RenderDiff(app.Formatter.FormatChangesAsDiff(changes)) + "\n\n" +
				r.RenderSaved(saved.Path, saved.BackupPath, saved.Changes.Len())
		})
	}
}

func emitPreview(ctx context.Context, app *cli.App, uc *usecase.EditConfigUseCase, path string, changes []port.KeyChange, summary usecase.ChangeSummary) error {
	preview, err := uc.Preview(ctx)
	if err != nil {
		return err
	}

	out := editOutput{Path: path, Changes: changes, Preview: preview, Summary: &summary}
	return emit(out, func() string {
		r := styles.NewEditorRenderer(app.Theme)
		text := r.RenderDiff(app.Formatter.FormatChangesAsDiff(changes))
		if len(summary.StaleComments) > 0 {
			text += "\n\n" + renderStaleComments(app, summary.StaleComments)
		}
		return text + "\n" + app.Theme.Subtle.Render("dry run: nothing was written")
	})
}

func renderStaleComments(app *cli.App, warnings []entity.Warning) string {
	return app.Theme.Subtle.Render("Comments that may no longer match:") + "\n" +
		styles.NewEditorRenderer(app.Theme).RenderWarnings(warnings)
}
