package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/cli/styles"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently edited config files",
	Long: `List the config files ghostedit opened most recently, with how often they
were opened and when they were last saved.`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

var recentForgetCmd = &cobra.Command{
	Use:   "forget <file>...",
	Short: "Remove files from the recent list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecentForget,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.AddCommand(recentForgetCmd)
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 0, "number of files to show (default: database.recent_limit)")
}

func runRecent(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	limit := recentLimit
	if limit <= 0 {
		limit = app.Config.Database.RecentLimit
	}

	files, err := app.NewRecentFilesUseCase().List(app.Ctx(), limit)
	if err != nil {
		return err
	}

	return emit(files, func() string {
		return styles.NewRecentRenderer(app.Theme).Render(files)
	})
}

func runRecentForget(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := app.NewRecentFilesUseCase()
	for _, path := range args {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if err := uc.Forget(app.Ctx(), path); err != nil {
			return err
		}
		if !structured() {
			fmt.Fprintf(stdout, "%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), path)
		}
	}
	return nil
}
