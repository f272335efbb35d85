package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/bnema/ghostedit/internal/cli"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/logging"
)

type conflictChoice int

const (
	conflictAbort conflictChoice = iota
	conflictOverwrite
	conflictReload
)

var conflictChoices = []styles.Choice{
	{Key: "o", Label: "Overwrite"},
	{Key: "r", Label: "Reload"},
	{Key: "a", Label: "Abort"},
}

var staleCommentChoices = []styles.Choice{
	{Key: "s", Label: "Save"},
	{Key: "a", Label: "Abort"},
}

// promptModel runs a single choice dialog and quits once it is answered.
type promptModel struct {
	choice styles.ChoiceModel
}

func newPromptModel(theme *styles.Theme, message, detail string, choices ...styles.Choice) promptModel {
	choice := styles.NewChoice(theme, message, choices...)
	choice.Detail = detail
	return promptModel{choice: choice}
}

func newConflictModel(theme *styles.Theme, path string) promptModel {
	return newPromptModel(theme, "Config file changed on disk",
		path+" was modified after it was loaded.", conflictChoices...)
}

func newStaleCommentsModel(theme *styles.Theme, path string) promptModel {
	return newPromptModel(theme, "Save with comments that may no longer match?",
		"Repeated keys in "+path+" are rewritten as one block.", staleCommentChoices...)
}

func (m promptModel) Init() tea.Cmd {
	return m.choice.Init()
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if m.choice.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m promptModel) View() string {
	if m.choice.Done() {
		return ""
	}
	return m.choice.View() + "\n"
}

// result is the index of the chosen option, -1 when escaped.
func (m promptModel) result() int {
	return m.choice.Result()
}

func conflictChoiceOf(i int) conflictChoice {
	switch i {
	case 0:
		return conflictOverwrite
	case 1:
		return conflictReload
	default:
		return conflictAbort
	}
}

// canPrompt reports whether an interactive question may be asked.
func canPrompt(app *cli.App) bool {
	return !structured() && app.Config.Editor.Confirm && term.IsTerminal(int(os.Stdin.Fd()))
}

// runPrompt shows m on stderr and returns the chosen index, -1 on failure.
func runPrompt(app *cli.App, m promptModel) int {
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("prompt failed")
		return -1
	}
	done, ok := final.(promptModel)
	if !ok {
		return -1
	}
	return done.result()
}

// resolveConflict prompts on the terminal when allowed. Without a terminal,
// or with editor.confirm disabled, the save is aborted.
func resolveConflict(app *cli.App, path string) conflictChoice {
	if !canPrompt(app) {
		logging.FromContext(app.Ctx()).Debug().Str("path", path).Msg("not prompting for stale file")
		return conflictAbort
	}
	return conflictChoiceOf(runPrompt(app, newConflictModel(app.Theme, path)))
}

// confirmStaleComments asks whether to save over blocks with interior
// comments. Without a terminal, or with editor.confirm disabled, the save
// goes ahead once the warnings are printed.
func confirmStaleComments(app *cli.App, path string) bool {
	if !canPrompt(app) {
		return true
	}
	return runPrompt(app, newStaleCommentsModel(app.Theme, path)) == 0
}
