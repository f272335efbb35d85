// Package document implements the structure-preserving round trip of a
// configuration file: parsing text into source lines and values, diffing the
// live values against the load-time snapshot, and merging the changes back
// into the original text.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/schema"
	"github.com/bnema/ghostedit/internal/domain/value"
)

const (
	commentMarker = "#"
	separator     = "="

	// IncludeKey loads another configuration file. It is recorded but never followed.
	IncludeKey = "config-file"
)

// Document is the result of parsing one file. It is read-only: edits go to a
// ValueMap and are merged back with Save.
type Document struct {
	// Lines holds every physical line in file order
	Lines []entity.SourceLine
	// Values are the values decoded from the directive lines
	Values *ValueMap
	// Index maps each known key to its directive lines
	Index    *LineIndex
	Warnings []entity.Warning
	// Newline is the prevailing line terminator of the file, "\n" or "\r\n".
	// It ends lines the file did not have before.
	Newline string

	source string
	schema *schema.Schema
}

// Source returns the text the document was parsed from.
func (d *Document) Source() string {
	return d.source
}

// Schema returns the schema the document was resolved against.
func (d *Document) Schema() *schema.Schema {
	return d.schema
}

// Parse splits text into classified lines and decodes every known directive.
// Content problems never fail the parse; they are reported as warnings.
func Parse(text string, s *schema.Schema) *Document {
	doc := &Document{
		Values:  NewValueMap(),
		Index:   newLineIndex(),
		Newline: "\n",
		source:  text,
		schema:  s,
	}
	crlf := strings.Count(text, "\r\n")
	if crlf > strings.Count(text, "\n")-crlf {
		doc.Newline = "\r\n"
	}

	for i, raw := range strings.SplitAfter(text, "\n") {
		if raw == "" {
			break
		}
		line := entity.SourceLine{Number: i + 1}
		switch {
		case strings.HasSuffix(raw, "\r\n"):
			line.Newline = "\r\n"
		case strings.HasSuffix(raw, "\n"):
			line.Newline = "\n"
		}
		line.Text = strings.TrimSuffix(raw, line.Newline)
		doc.classify(&line, i)
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

func (d *Document) classify(line *entity.SourceLine, idx int) {
	trimmed := strings.TrimSpace(line.Text)

	switch {
	case trimmed == "":
		line.Kind = entity.LineBlank
		return
	case strings.HasPrefix(trimmed, commentMarker):
		line.Kind = entity.LineComment
		return
	}

	k, v, ok := strings.Cut(line.Text, separator)
	key := strings.TrimSpace(k)
	if !ok || key == "" {
		line.Kind = entity.LineMalformed
		d.warn(entity.WarningMalformedLine, line.Number, "", "expected key = value, line kept as is")
		return
	}

	line.Key = key
	line.RawValue = strings.TrimSpace(v)

	entry, known := d.schema.Lookup(key)
	if !known {
		line.Kind = entity.LineUnknownDirective
		msg := fmt.Sprintf("unknown key %q, line kept as is", key)
		if suggestion, ok := d.schema.Suggest(key); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		d.warn(entity.WarningUnknownKey, line.Number, key, msg)
		return
	}

	line.Kind = entity.LineDirective
	d.Index.add(key, idx)
	d.store(entry, *line)
}

func (d *Document) store(entry entity.SchemaEntry, line entity.SourceLine) {
	v, err := value.Parse(entry, line.RawValue)
	issues := problemsOf(err)
	if err != nil {
		d.warn(entity.WarningValidation, line.Number, entry.Key, err.Error())
	}

	if entry.Key == IncludeKey {
		d.warn(entity.WarningInclude, line.Number, entry.Key,
			fmt.Sprintf("%q is included by Ghostty but its keys are not loaded here", line.RawValue))
	}

	if entry.Repeatable {
		d.Values.Append(entry.Key, v, issues)
		return
	}

	if d.Values.Has(entry.Key) {
		first, _ := d.Index.First(entry.Key)
		d.warn(entity.WarningDuplicateKey, line.Number, entry.Key,
			fmt.Sprintf("%s is already set on line %d, this value wins", entry.Key, d.Lines[first].Number))
	}
	d.Values.Set(entry.Key, false, []value.Value{v}, issues)
}

func (d *Document) warn(kind entity.WarningKind, line int, key, msg string) {
	d.Warnings = append(d.Warnings, entity.Warning{Kind: kind, Line: line, Key: key, Message: msg})
}

// WarningsOf returns the warnings of the given kind.
func (d *Document) WarningsOf(kind entity.WarningKind) []entity.Warning {
	var out []entity.Warning
	for _, w := range d.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

func problemsOf(err error) []string {
	if err == nil {
		return nil
	}
	var verr *value.Error
	if errors.As(err, &verr) {
		return verr.Problems
	}
	return []string{err.Error()}
}
