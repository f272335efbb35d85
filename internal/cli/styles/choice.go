package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Choice is one option of a ChoiceModel. Key is its single-letter shortcut.
type Choice struct {
	Key   string
	Label string
}

// ChoiceModel is a horizontal single-choice dialog, a generalization of a
// yes/no confirm to any number of options.
type ChoiceModel struct {
	Message  string
	Detail   string
	Choices  []Choice
	Selected int
	Chosen   bool // User pressed enter or a shortcut
	Canceled bool // User pressed escape
	theme    *Theme
}

// ChoiceKeyMap defines keybindings for the choice dialog.
type ChoiceKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultChoiceKeyMap returns the default keybindings.
func DefaultChoiceKeyMap() ChoiceKeyMap {
	return ChoiceKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "previous")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewChoice creates a dialog with the first choice selected.
func NewChoice(theme *Theme, message string, choices ...Choice) ChoiceModel {
	return ChoiceModel{
		Message: message,
		Choices: choices,
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m ChoiceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ChoiceModel) Update(msg tea.Msg) (ChoiceModel, tea.Cmd) {
	keys := DefaultChoiceKeyMap()

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Left):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(keyMsg, keys.Right):
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case key.Matches(keyMsg, keys.Confirm):
		m.Chosen = len(m.Choices) > 0
	case key.Matches(keyMsg, keys.Cancel):
		m.Canceled = true
	default:
		for i, c := range m.Choices {
			if c.Key != "" && keyMsg.String() == c.Key {
				m.Selected = i
				m.Chosen = true
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m ChoiceModel) View() string {
	t := m.theme

	buttons := make([]string, 0, 2*len(m.Choices))
	shortcuts := make([]string, 0, len(m.Choices))
	for i, c := range m.Choices {
		style := t.InactiveButton
		if i == m.Selected {
			style = t.ActiveButton
		}
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, style.Render(" "+c.Label+" "))
		if c.Key != "" {
			shortcuts = append(shortcuts, c.Key)
		}
	}

	rows := []string{t.Title.Render(m.Message)}
	if m.Detail != "" {
		rows = append(rows, t.Subtle.Render(m.Detail))
	}
	rows = append(rows,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		"",
		t.Subtle.Render(strings.Join(shortcuts, "/")+" or ←/→ to select • enter to confirm • esc to cancel"),
	)

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// Done returns true if the dialog is complete.
func (m ChoiceModel) Done() bool {
	return m.Chosen || m.Canceled
}

// Result returns the chosen option's index, or -1 when canceled or not done.
func (m ChoiceModel) Result() int {
	if !m.Chosen {
		return -1
	}
	return m.Selected
}
