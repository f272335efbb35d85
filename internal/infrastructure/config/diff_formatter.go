package config

import (
	"fmt"
	"strings"

	"github.com/bnema/ghostedit/internal/application/port"
)

// ConfigDiffFormatter implements port.DiffFormatter for pending Ghostty config edits.
type ConfigDiffFormatter struct{}

// NewDiffFormatter creates a new ConfigDiffFormatter.
func NewDiffFormatter() *ConfigDiffFormatter {
	return &ConfigDiffFormatter{}
}

// FormatChangesAsDiff returns changes formatted as a diff for display.
func (*ConfigDiffFormatter) FormatChangesAsDiff(changes []port.KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Pending changes:\n\n")

	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			for _, v := range change.NewValues {
				fmt.Fprintf(&sb, "  + %s\n", directive(change.Key, v))
			}
		case port.KeyChangeRemoved:
			for _, v := range change.OldValues {
				fmt.Fprintf(&sb, "  - %s\n", directive(change.Key, v))
			}
		case port.KeyChangeModified:
			fmt.Fprintf(&sb, "  ~ %s\n", change.Key)
			for _, v := range change.OldValues {
				fmt.Fprintf(&sb, "    - %s\n", directive(change.Key, v))
			}
			for _, v := range change.NewValues {
				fmt.Fprintf(&sb, "    + %s\n", directive(change.Key, v))
			}
		}
	}

	return sb.String()
}

func directive(key, value string) string {
	if value == "" {
		return key + " ="
	}
	return key + " = " + value
}
