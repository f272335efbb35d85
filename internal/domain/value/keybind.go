package value

import (
	"errors"
	"strings"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

// KeybindPrefixes are the trigger flags Ghostty understands, in canonical order.
var KeybindPrefixes = []string{"global:", "all:", "unconsumed:", "performable:"}

const keybindClear = "clear"

// Trigger is one key press of a keybinding sequence.
type Trigger struct {
	Modifiers []string
	Key       string
}

func (t Trigger) String() string {
	if len(t.Modifiers) == 0 {
		return t.Key
	}
	return strings.Join(t.Modifiers, "+") + "+" + t.Key
}

// Keybind is a "trigger=action" binding or the special "clear" value.
type Keybind struct {
	Clear    bool
	Prefixes []string
	Sequence []Trigger
	Action   string
}

func (Keybind) Category() entity.ValueCategory { return entity.CategoryKeybinding }

func (v Keybind) String() string {
	if v.Clear {
		return keybindClear
	}
	triggers := make([]string, len(v.Sequence))
	for i, t := range v.Sequence {
		triggers[i] = t.String()
	}
	return strings.Join(v.Prefixes, "") + strings.Join(triggers, ">") + "=" + v.Action
}

var (
	errKeybindShape  = errors.New("keybinding must look like trigger=action")
	errKeybindAction = errors.New("keybinding is missing its action")
)

func decodeKeybind(raw string) (Keybind, error) {
	if raw == keybindClear {
		return Keybind{Clear: true}, nil
	}

	var kb Keybind
	rest := raw
	for {
		p, ok := leadingPrefix(rest)
		if !ok {
			break
		}
		kb.Prefixes = append(kb.Prefixes, p)
		rest = rest[len(p):]
	}

	idx := actionSeparator(rest)
	if idx < 0 {
		return Keybind{}, errKeybindShape
	}
	trigger, action := rest[:idx], rest[idx+1:]
	if action == "" {
		return Keybind{}, errKeybindAction
	}

	for _, part := range strings.Split(trigger, ">") {
		kb.Sequence = append(kb.Sequence, decodeTrigger(part))
	}
	kb.Action = action
	return kb, nil
}

func leadingPrefix(s string) (string, bool) {
	for _, p := range KeybindPrefixes {
		if strings.HasPrefix(s, p) {
			return p, true
		}
	}
	return "", false
}

// actionSeparator finds the '=' splitting trigger from action. An '=' that
// starts the string or follows a single '+' is the "=" key itself.
func actionSeparator(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '=' {
			continue
		}
		if s[i-1] != '+' || (i >= 2 && s[i-2] == '+') {
			return i
		}
	}
	return -1
}

func decodeTrigger(s string) Trigger {
	var t Trigger
	var mods string
	switch {
	case len(s) >= 2 && strings.HasSuffix(s, "++"):
		t.Key = "+"
		mods = s[:len(s)-2]
	case s == "+":
		t.Key = "+"
	default:
		idx := strings.LastIndex(s, "+")
		if idx < 0 {
			t.Key = s
			return t
		}
		t.Key = s[idx+1:]
		mods = s[:idx]
	}
	if mods != "" {
		t.Modifiers = strings.Split(mods, "+")
	}
	return t
}
