package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/entity"
)

var getWarnings bool

var getCmd = &cobra.Command{
	Use:   "get [key...]",
	Short: "Show config values",
	Long: `Show the values set in the Ghostty config file.

Without arguments, lists every key the file sets, in file order. With keys,
shows their values and falls back to the schema default for keys the file
does not set.

Examples:
  ghostedit get                     # Everything the file sets
  ghostedit get font-family keybind # Two keys, defaults included
  ghostedit get -w                  # Also list parse warnings`,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVarP(&getWarnings, "warnings", "w", false, "also list parse and validation warnings")
}

type getOutput struct {
	Path     string             `json:"path" yaml:"path"`
	Exists   bool               `json:"exists" yaml:"exists"`
	Values   []styles.KeyValues `json:"values" yaml:"values"`
	Warnings []entity.Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func runGet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	path, err := app.ConfigPath(configFile)
	if err != nil {
		return err
	}

	uc := app.NewEditUseCase(true)
	loaded, err := uc.LoadFile(ctx, usecase.LoadInput{Path: path, CreateIfMissing: true})
	if err != nil {
		return err
	}

	values, err := collectValues(app, uc, args)
	if err != nil {
		return err
	}

	out := getOutput{Path: loaded.Path, Exists: loaded.Exists, Values: values}
	if getWarnings {
		out.Warnings = loaded.Warnings
	}

	return emit(out, func() string {
		r := styles.NewEditorRenderer(app.Theme)
		parts := []string{
			r.RenderFileInfo(loaded.Path, loaded.Exists, loaded.Values.Len(), len(loaded.Warnings)),
			"",
			r.RenderValues(values),
		}
		if getWarnings && len(loaded.Warnings) > 0 {
			parts = append(parts, "", strings.TrimRight(r.RenderWarnings(loaded.Warnings), "\n"))
		}
		return strings.Join(parts, "\n")
	})
}

// collectValues lists the requested keys, or every key the file sets.
func collectValues(app *cli.App, uc *usecase.EditConfigUseCase, keys []string) ([]styles.KeyValues, error) {
	if len(keys) == 0 {
		current, err := uc.Values()
		if err != nil {
			return nil, err
		}
		out := make([]styles.KeyValues, 0, current.Len())
		for _, e := range current.Entries() {
			out = append(out, styles.KeyValues{Key: e.Key, Values: e.Raw(), Flagged: e.Flagged()})
		}
		return out, nil
	}

	out := make([]styles.KeyValues, 0, len(keys))
	for _, key := range keys {
		if e, ok := uc.Get(key); ok {
			out = append(out, styles.KeyValues{Key: key, Values: e.Raw(), Flagged: e.Flagged()})
			continue
		}

		entry, ok := app.Schema.Lookup(key)
		if !ok {
			if suggestion, found := app.Schema.Suggest(key); found {
				return nil, fmt.Errorf("%w %q (did you mean %q?)", usecase.ErrUnknownKey, key, suggestion)
			}
			return nil, fmt.Errorf("%w %q", usecase.ErrUnknownKey, key)
		}
		out = append(out, styles.KeyValues{Key: key, Values: entry.Default, Default: true})
	}
	return out, nil
}
