package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli/styles"
)

// errCheckFailed makes the process exit non-zero without repeating the report.
var errCheckFailed = errors.New("config check found problems")

var checkJobs int

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate config files without changing them",
	Long: `Parse config files read-only and report unknown keys, invalid values,
duplicate keys and malformed lines. Exits non-zero when any file has problems.

Without arguments, checks the default config file.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 0, "files checked in parallel (default 4)")
}

func runCheck(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	paths := args
	if len(paths) == 0 {
		path, err := app.ConfigPath(configFile)
		if err != nil {
			return err
		}
		paths = []string{path}
	}

	result, err := app.NewCheckUseCase().Execute(app.Ctx(), usecase.CheckConfigInput{Paths: paths, Concurrency: checkJobs})
	if err != nil {
		return err
	}

	if err := emit(result.Reports, func() string {
		return styles.NewCheckRenderer(app.Theme).Render(result.Reports)
	}); err != nil {
		return err
	}

	if !result.Clean() {
		return errCheckFailed
	}
	return nil
}
