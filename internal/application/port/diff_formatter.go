package port

import "fmt"

// KeyChangeType classifies a change for display.
type KeyChangeType int

const (
	KeyChangeAdded KeyChangeType = iota
	KeyChangeRemoved
	KeyChangeModified
)

func (t KeyChangeType) String() string {
	switch t {
	case KeyChangeAdded:
		return "added"
	case KeyChangeRemoved:
		return "removed"
	case KeyChangeModified:
		return "modified"
	default:
		return fmt.Sprintf("KeyChangeType(%d)", int(t))
	}
}

// MarshalText renders the type by name in json and yaml output.
func (t KeyChangeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// KeyChange is one changed key with its raw values before and after.
type KeyChange struct {
	Type      KeyChangeType `json:"type" yaml:"type"`
	Key       string        `json:"key" yaml:"key"`
	OldValues []string      `json:"old,omitempty" yaml:"old,omitempty"`
	NewValues []string      `json:"new,omitempty" yaml:"new,omitempty"`
}

// DiffFormatter renders pending changes for display.
type DiffFormatter interface {
	FormatChangesAsDiff(changes []KeyChange) string
}
