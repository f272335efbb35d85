package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func conflictChoice() ChoiceModel {
	return NewChoice(NewTheme(), "File changed on disk",
		Choice{Key: "o", Label: "Overwrite"},
		Choice{Key: "r", Label: "Reload"},
		Choice{Key: "a", Label: "Abort"},
	)
}

func press(m ChoiceModel, keys ...tea.KeyMsg) ChoiceModel {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestChoiceModel_Navigation(t *testing.T) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m := press(conflictChoice(), right, right, right)
	assert.Equal(t, 2, m.Selected, "selection stops at the last choice")

	m = press(m, left, left, left)
	assert.Equal(t, 0, m.Selected, "selection stops at the first choice")
	assert.False(t, m.Done())
	assert.Equal(t, -1, m.Result())
}

func TestChoiceModel_EnterConfirmsSelection(t *testing.T) {
	m := press(conflictChoice(), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Done())
	assert.Equal(t, 1, m.Result())
}

func TestChoiceModel_Shortcut(t *testing.T) {
	m := press(conflictChoice(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	assert.True(t, m.Done())
	assert.Equal(t, 2, m.Result())
}

func TestChoiceModel_Escape(t *testing.T) {
	m := press(conflictChoice(), tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Done())
	assert.True(t, m.Canceled)
	assert.Equal(t, -1, m.Result())
}

func TestChoiceModel_IgnoresKeysWhenDone(t *testing.T) {
	m := press(conflictChoice(), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 0, m.Result())
}

func TestChoiceModel_View(t *testing.T) {
	view := conflictChoice().View()

	assert.Contains(t, view, "File changed on disk")
	assert.Contains(t, view, "Overwrite")
	assert.Contains(t, view, "Abort")
	assert.Contains(t, view, "o/r/a")
}
