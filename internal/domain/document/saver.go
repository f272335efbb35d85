package document

import (
	"strings"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/value"
)

// DefaultMarker precedes keys appended by a save.
const DefaultMarker = "# Added by ghostedit"

// Saver merges value changes back into the text of a parsed document.
type Saver struct {
	// Marker is the comment written once before appended keys.
	Marker string
}

// Save merges with the default marker.
func Save(doc *Document, current, original *ValueMap) string {
	return Saver{Marker: DefaultMarker}.Save(doc, current, original)
}

// FormatLine renders a directive in canonical form.
func FormatLine(key, raw string) string {
	if raw == "" {
		return key + " " + separator
	}
	return key + " " + separator + " " + raw
}

// Save replays the document lines, rewriting only the keys that differ
// between current and original and appending new keys at the end.
// Without changes the source text is returned byte for byte.
func (s Saver) Save(doc *Document, current, original *ValueMap) string {
	changes := Diff(current, original)
	if changes.Empty() {
		return doc.source
	}

	marker := s.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	removed := toSet(changes.Removed)
	modified := toSet(changes.Modified)

	// rewrite maps a line index to the key whose values replace it.
	rewrite := make(map[int]string)
	var appended []string
	for _, key := range changes.Modified {
		e := current.entries[key]
		var idx int
		var ok bool
		if e.Repeatable {
			idx, ok = doc.Index.First(key)
		} else {
			idx, ok = doc.Index.Last(key)
		}
		if !ok {
			appended = append(appended, key)
			continue
		}
		rewrite[idx] = key
	}
	appended = append(appended, changes.Added...)

	out := make([]outLine, 0, len(doc.Lines)+len(appended)+1)
	for i, line := range doc.Lines {
		verbatim := outLine{line.Text, line.Newline}
		if line.Kind != entity.LineDirective {
			out = append(out, verbatim)
			continue
		}
		if removed[line.Key] {
			continue
		}
		if key, ok := rewrite[i]; ok {
			nl := line.Newline
			if nl == "" {
				nl = doc.Newline
			}
			for _, text := range formatEntry(current.entries[key]) {
				out = append(out, outLine{text, nl})
			}
			continue
		}
		if modified[line.Key] && current.entries[line.Key].Repeatable {
			continue
		}
		out = append(out, verbatim)
	}

	if len(appended) > 0 {
		if n := len(out); n > 0 && out[n-1].newline == "" {
			out[n-1].newline = doc.Newline
		}
		out = append(out, outLine{marker, doc.Newline})
		for _, key := range appended {
			for _, text := range formatEntry(current.entries[key]) {
				out = append(out, outLine{text, doc.Newline})
			}
		}
	}

	for len(out) > 0 && strings.TrimRight(out[len(out)-1].text, "\r") == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 || strings.TrimSpace(joinLines(out)) == "" {
		return ""
	}
	if last := &out[len(out)-1]; last.newline == "" {
		last.newline = doc.Newline
	}
	return joinLines(out)
}

// outLine is a line of saved text with the terminator it is written with.
type outLine struct {
	text    string
	newline string
}

func joinLines(lines []outLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
		b.WriteString(l.newline)
	}
	return b.String()
}

func formatEntry(e *Entry) []string {
	lines := make([]string, len(e.Values))
	for i, v := range e.Values {
		lines[i] = FormatLine(e.Key, value.Encode(v))
	}
	return lines
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
