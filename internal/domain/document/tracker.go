package document

import (
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/value"
)

// Diff classifies every key that differs between current and original.
// Modified and Added follow the order of current, Removed the order of
// original. Reordering a list counts as a modification.
func Diff(current, original *ValueMap) entity.ChangeSet {
	var cs entity.ChangeSet
	for _, key := range current.order {
		cur := current.entries[key]
		orig, ok := original.entries[key]
		switch {
		case !ok:
			cs.Added = append(cs.Added, key)
		case !value.EqualLists(cur.Values, orig.Values):
			cs.Modified = append(cs.Modified, key)
		}
	}
	for _, key := range original.order {
		if !current.Has(key) {
			cs.Removed = append(cs.Removed, key)
		}
	}
	return cs
}

// StaleComments reports comment lines sitting between the occurrences of a
// repeatable key whose list is rewritten or removed. Those comments stay where
// they are and may no longer describe the entries around them.
func StaleComments(doc *Document, changes entity.ChangeSet) []entity.Warning {
	var out []entity.Warning
	check := func(key string) {
		lines := doc.Index.lines[key]
		if len(lines) < 2 {
			return
		}
		for i := lines[0] + 1; i < lines[len(lines)-1]; i++ {
			if doc.Lines[i].Kind != entity.LineComment {
				continue
			}
			out = append(out, entity.Warning{
				Kind:    entity.WarningStaleComment,
				Line:    doc.Lines[i].Number,
				Key:     key,
				Message: "comment inside the " + key + " list may no longer match the entries around it",
			})
		}
	}

	for _, key := range changes.Modified {
		if e, ok := doc.Values.entries[key]; ok && e.Repeatable {
			check(key)
		}
	}
	for _, key := range changes.Removed {
		if e, ok := doc.Values.entries[key]; ok && e.Repeatable {
			check(key)
		}
	}
	return out
}
