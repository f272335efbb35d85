package usecase

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/domain/document"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/schema"
	"github.com/bnema/ghostedit/internal/logging"
)

// DiffConfigUseCase compares the values of two config files, typically a
// file and the backup taken by its last save.
type DiffConfigUseCase struct {
	schema    *schema.Schema
	store     port.ConfigFileStore
	formatter port.DiffFormatter
}

// NewDiffConfigUseCase creates a new DiffConfigUseCase. formatter may be nil
// when only the structured changes are needed.
func NewDiffConfigUseCase(s *schema.Schema, store port.ConfigFileStore, formatter port.DiffFormatter) *DiffConfigUseCase {
	return &DiffConfigUseCase{schema: s, store: store, formatter: formatter}
}

// DiffConfigInput names the two files. A missing From file counts as empty.
type DiffConfigInput struct {
	From string
	To   string
}

// DiffConfigOutput lists the key-level differences from From to To.
// Diff holds the formatted changes when a formatter is set.
type DiffConfigOutput struct {
	FromExists bool
	Changes    []port.KeyChange
	Diff       string
}

// Execute parses both files and diffs their values.
func (uc *DiffConfigUseCase) Execute(ctx context.Context, in DiffConfigInput) (*DiffConfigOutput, error) {
	from, fromExists, err := uc.values(ctx, in.From, true)
	if err != nil {
		return nil, err
	}
	to, _, err := uc.values(ctx, in.To, false)
	if err != nil {
		return nil, err
	}

	changes := keyChanges(from, to, document.Diff(to, from))
	logging.FromContext(ctx).Debug().
		Str("from", in.From).
		Str("to", in.To).
		Int("changes", len(changes)).
		Msg("config files compared")

	out := &DiffConfigOutput{FromExists: fromExists, Changes: changes}
	if uc.formatter != nil {
		out.Diff = uc.formatter.FormatChangesAsDiff(changes)
	}
	return out, nil
}

func (uc *DiffConfigUseCase) values(ctx context.Context, path string, allowMissing bool) (*document.ValueMap, bool, error) {
	info, err := uc.store.Stat(ctx, path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !info.Exists {
		if allowMissing {
			return document.NewValueMap(), false, nil
		}
		return nil, false, fmt.Errorf("failed to read config file: %w", &port.FileError{Op: "read", Path: path, Err: fs.ErrNotExist})
	}

	data, err := uc.store.Read(ctx, path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read config file: %w", err)
	}
	return document.Parse(string(data), uc.schema).Values, true, nil
}

// keyChanges pairs a change set with the raw values before and after, in the
// order modified, added, removed.
func keyChanges(original, current *document.ValueMap, cs entity.ChangeSet) []port.KeyChange {
	out := make([]port.KeyChange, 0, cs.Len())
	for _, key := range cs.Modified {
		before, _ := original.Get(key)
		after, _ := current.Get(key)
		out = append(out, port.KeyChange{Type: port.KeyChangeModified, Key: key, OldValues: before.Raw(), NewValues: after.Raw()})
	}
	for _, key := range cs.Added {
		after, _ := current.Get(key)
		out = append(out, port.KeyChange{Type: port.KeyChangeAdded, Key: key, NewValues: after.Raw()})
	}
	for _, key := range cs.Removed {
		before, _ := original.Get(key)
		out = append(out, port.KeyChange{Type: port.KeyChangeRemoved, Key: key, OldValues: before.Raw()})
	}
	return out
}

// CompareValues returns the changes that turn original into current.
func CompareValues(original, current *document.ValueMap) []port.KeyChange {
	return keyChanges(original, current, document.Diff(current, original))
}
