package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/infrastructure/config"
	"github.com/bnema/ghostedit/internal/infrastructure/watcher"
	"github.com/bnema/ghostedit/internal/logging"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report changes to the config file as they happen",
	Long: `Watch the config file and print which keys changed each time another
program saves it, along with any new warnings. Stops on Ctrl+C.

Changes to ghostedit's own settings file (such as editor.accent) are picked up
while watching.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before a burst of writes is reported")
}

type watchEvent struct {
	Time     time.Time        `json:"time" yaml:"time"`
	Path     string           `json:"path" yaml:"path"`
	Changes  []port.KeyChange `json:"changes" yaml:"changes"`
	Warnings []entity.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func runWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := app.ConfigPath(configFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Bind(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(logging.WithPath(ctx, path), "watch")

	uc := app.NewEditUseCase(true)
	loaded, err := uc.LoadFile(ctx, usecase.LoadInput{Path: path, CreateIfMissing: true})
	if err != nil {
		return err
	}

	fw := watcher.New(watchDebounce)
	defer func() { _ = fw.Close() }()

	changed := make(chan struct{}, 1)
	if err := uc.Watch(ctx, fw, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	// Latest reload wins; older pending ones are dropped.
	reloaded := make(chan *config.Config, 1)
	if err := app.WatchSettings(ctx, func(cfg *config.Config) {
		select {
		case <-reloaded:
		default:
		}
		reloaded <- cfg
	}); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("settings changes will not be picked up")
	}

	if !structured() {
		fmt.Fprintln(stdout, styles.NewEditorRenderer(app.Theme).RenderFileInfo(path, loaded.Exists, loaded.Values.Len(), len(loaded.Warnings)))
		fmt.Fprintln(stdout, app.Theme.Subtle.Render("Watching for changes... (Ctrl+C to stop)"))
	}

	previous := loaded
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-reloaded:
			app.ApplySettings(cfg)
			logging.FromContext(ctx).Info().Str("accent", cfg.Editor.Accent).Msg("settings reloaded")
		case <-changed:
			next, err := uc.LoadFile(ctx, usecase.LoadInput{Path: path, CreateIfMissing: true})
			if err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("failed to reload config file")
				continue
			}
			if err := reportChange(app, previous, next); err != nil {
				return err
			}
			previous = next
		}
	}
}

func reportChange(app *cli.App, previous, next *usecase.LoadOutput) error {
	changes := usecase.CompareValues(previous.Values, next.Values)
	event := watchEvent{Time: time.Now(), Path: next.Path, Changes: changes, Warnings: next.Warnings}

	return emit(event, func() string {
		r := styles.NewEditorRenderer(app.Theme)
		text := app.Theme.Subtle.Render(event.Time.Format("15:04:05")) + " " + r.RenderDiff(app.Formatter.FormatChangesAsDiff(changes))
		if len(next.Warnings) > 0 {
			text += "\n" + r.RenderWarnings(next.Warnings)
		}
		return text
	})
}
