package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/domain/document"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/repository"
	"github.com/bnema/ghostedit/internal/domain/schema"
	"github.com/bnema/ghostedit/internal/domain/value"
	"github.com/bnema/ghostedit/internal/logging"
)

var (
	// ErrNoDocument is returned by edits and saves before a file was loaded.
	ErrNoDocument = errors.New("no config file loaded")

	// ErrUnknownKey is returned when an edit names a key the schema does not define.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrValueCount is returned when a non-repeatable key gets zero or several values.
	ErrValueCount = errors.New("key takes exactly one value")

	// ErrStaleFile is returned by SaveFile when the file changed on disk since it was loaded.
	ErrStaleFile = errors.New("config file changed on disk since it was loaded")
)

// EditConfigOptions tunes how EditConfigUseCase writes files.
type EditConfigOptions struct {
	// Marker is the comment written before keys appended to the file.
	Marker string
	// SkipBackup disables the <path>.bak copy taken before each save.
	SkipBackup bool
}

// EditConfigUseCase loads one config file, applies edits to its live values
// and merges them back into the original text on save.
type EditConfigUseCase struct {
	schema *schema.Schema
	store  port.ConfigFileStore
	recent repository.RecentFileRepository
	opts   EditConfigOptions

	mu       sync.Mutex
	path     string
	doc      *document.Document
	current  *document.ValueMap
	loadInfo port.FileInfo
	external bool
}

// NewEditConfigUseCase creates a new EditConfigUseCase. recent may be nil.
func NewEditConfigUseCase(
	s *schema.Schema,
	store port.ConfigFileStore,
	recent repository.RecentFileRepository,
	opts EditConfigOptions,
) *EditConfigUseCase {
	if opts.Marker == "" {
		opts.Marker = document.DefaultMarker
	}
	return &EditConfigUseCase{
		schema: s,
		store:  store,
		recent: recent,
		opts:   opts,
	}
}

// LoadInput contains parameters for loading a config file.
type LoadInput struct {
	Path string
	// CreateIfMissing starts from an empty document when the file does not exist.
	CreateIfMissing bool
}

// LoadOutput contains the decoded values and every parse warning.
type LoadOutput struct {
	Path     string
	Exists   bool
	Values   *document.ValueMap
	Warnings []entity.Warning
}

// LoadFile reads and parses path, replacing any previously loaded document.
// The returned Values is a copy; edits go through the mutators.
func (uc *EditConfigUseCase) LoadFile(ctx context.Context, in LoadInput) (*LoadOutput, error) {
	log := logging.FromContext(ctx)

	if in.Path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	info, err := uc.store.Stat(ctx, in.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var text string
	if info.Exists {
		data, err := uc.store.Read(ctx, in.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		text = string(data)
	} else if !in.CreateIfMissing {
		return nil, fmt.Errorf("failed to read config file: %w", &port.FileError{Op: "read", Path: in.Path, Err: fs.ErrNotExist})
	}

	doc := document.Parse(text, uc.schema)

	uc.mu.Lock()
	uc.path = in.Path
	uc.doc = doc
	uc.current = doc.Values.Clone()
	uc.loadInfo = info
	uc.external = false
	uc.mu.Unlock()

	log.Debug().
		Str("path", in.Path).
		Bool("exists", info.Exists).
		Int("lines", len(doc.Lines)).
		Int("keys", doc.Values.Len()).
		Int("warnings", len(doc.Warnings)).
		Msg("config file loaded")

	if uc.recent != nil {
		if _, err := uc.recent.Touch(ctx, in.Path); err != nil {
			log.Warn().Err(err).Str("path", in.Path).Msg("failed to record recent file")
		}
	}

	return &LoadOutput{
		Path:     in.Path,
		Exists:   info.Exists,
		Values:   doc.Values.Clone(),
		Warnings: append([]entity.Warning(nil), doc.Warnings...),
	}, nil
}

// Path returns the path of the loaded file.
func (uc *EditConfigUseCase) Path() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.path
}

// Document returns the parsed document of the last load or save.
func (uc *EditConfigUseCase) Document() (*document.Document, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.doc == nil {
		return nil, ErrNoDocument
	}
	return uc.doc, nil
}

// Get returns the live entry for key.
func (uc *EditConfigUseCase) Get(key string) (document.Entry, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return document.Entry{}, false
	}
	return uc.current.Get(key)
}

// Values returns a copy of the live values.
func (uc *EditConfigUseCase) Values() (*document.ValueMap, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil, ErrNoDocument
	}
	return uc.current.Clone(), nil
}

// UpdateValue replaces the values of key. Non-repeatable keys take exactly
// one raw value; repeatable keys take the whole list. Invalid values are
// rejected with a *value.Error and the live values stay untouched.
func (uc *EditConfigUseCase) UpdateValue(ctx context.Context, key string, raws ...string) error {
	log := logging.FromContext(ctx)

	entry, err := uc.lookup(key)
	if err != nil {
		return err
	}
	if !entry.Repeatable && len(raws) != 1 {
		return fmt.Errorf("%s: %w (got %d)", key, ErrValueCount, len(raws))
	}

	values, err := parseAll(entry, raws)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return ErrNoDocument
	}
	uc.current.Set(key, entry.Repeatable, values, nil)

	log.Debug().Str("key", key).Strs("values", raws).Msg("value updated")
	return nil
}

// AppendValue adds one entry to the list of a repeatable key. On other keys
// it behaves like UpdateValue.
func (uc *EditConfigUseCase) AppendValue(ctx context.Context, key, raw string) error {
	entry, err := uc.lookup(key)
	if err != nil {
		return err
	}
	if !entry.Repeatable {
		return uc.UpdateValue(ctx, key, raw)
	}

	v, err := value.Parse(entry, raw)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return ErrNoDocument
	}
	uc.current.Append(key, v, nil)

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", raw).Msg("value appended")
	return nil
}

// RemoveValue drops key from the live values. Its lines disappear on save.
// Removing an absent key is a no-op.
func (uc *EditConfigUseCase) RemoveValue(ctx context.Context, key string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return ErrNoDocument
	}
	if uc.current.Delete(key) {
		logging.FromContext(ctx).Debug().Str("key", key).Msg("value removed")
	}
	return nil
}

// ResetToDefault sets key to its schema default, or removes it when the
// schema defines none.
func (uc *EditConfigUseCase) ResetToDefault(ctx context.Context, key string) error {
	entry, err := uc.lookup(key)
	if err != nil {
		return err
	}
	if !entry.HasDefault() {
		return uc.RemoveValue(ctx, key)
	}

	values, err := value.Defaults(entry)
	if err != nil {
		return fmt.Errorf("failed to decode default of %s: %w", key, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return ErrNoDocument
	}
	uc.current.Set(key, entry.Repeatable, values, nil)

	logging.FromContext(ctx).Debug().Str("key", key).Strs("values", entry.Default).Msg("value reset to default")
	return nil
}

// ChangeSummary lists pending changes and the comments they may leave stale.
type ChangeSummary struct {
	entity.ChangeSet `yaml:",inline"`
	StaleComments []entity.Warning `json:"stale_comments,omitempty" yaml:"stale_comments,omitempty"`
}

// GetChangeSummary compares the live values with the last load or save.
func (uc *EditConfigUseCase) GetChangeSummary(_ context.Context) (ChangeSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.doc == nil {
		return ChangeSummary{}, ErrNoDocument
	}

	changes := document.Diff(uc.current, uc.doc.Values)
	return ChangeSummary{
		ChangeSet:     changes,
		StaleComments: document.StaleComments(uc.doc, changes),
	}, nil
}

// KeyChanges returns the pending changes with their raw values, in the
// order modified, added, removed.
func (uc *EditConfigUseCase) KeyChanges(ctx context.Context) ([]port.KeyChange, error) {
	summary, err := uc.GetChangeSummary(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return keyChanges(uc.doc.Values, uc.current, summary.ChangeSet), nil
}

// Preview returns the text SaveFile would write.
func (uc *EditConfigUseCase) Preview(_ context.Context) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.doc == nil {
		return "", ErrNoDocument
	}
	return document.Saver{Marker: uc.opts.Marker}.Save(uc.doc, uc.current, uc.doc.Values), nil
}

// SaveInput contains parameters for saving.
type SaveInput struct {
	// Path defaults to the loaded path.
	Path string
	// Force skips the staleness check.
	Force bool
}

// SaveOutput describes a completed save.
type SaveOutput struct {
	Path       string
	BackupPath string
	Changes    entity.ChangeSet
	// Written is false when nothing changed and the file was left alone.
	Written bool
}

// SaveFile merges the live values into the loaded text and writes it. The
// save aborts with ErrStaleFile when the file changed since it was loaded,
// unless in.Force is set. I/O failures match port.ErrFileIO. The previous
// content is copied to <path>.bak first and the write is atomic.
func (uc *EditConfigUseCase) SaveFile(ctx context.Context, in SaveInput) (*SaveOutput, error) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.doc == nil {
		return nil, ErrNoDocument
	}

	path := in.Path
	if path == "" {
		path = uc.path
	}
	samePath := path == uc.path

	changes := document.Diff(uc.current, uc.doc.Values)
	if changes.Empty() && samePath {
		log.Debug().Str("path", path).Msg("no changes to save")
		return &SaveOutput{Path: path, Changes: changes}, nil
	}

	if samePath && !in.Force {
		info, err := uc.store.Stat(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if stale(uc.loadInfo, info) {
			log.Warn().
				Str("path", path).
				Time("loaded_mtime", uc.loadInfo.ModTime).
				Time("disk_mtime", info.ModTime).
				Msg("config file changed on disk")
			return nil, fmt.Errorf("save %s: %w", path, ErrStaleFile)
		}
	}

	text := document.Saver{Marker: uc.opts.Marker}.Save(uc.doc, uc.current, uc.doc.Values)

	var backupPath string
	if !uc.opts.SkipBackup {
		var err error
		backupPath, err = uc.store.Backup(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to back up config file: %w", err)
		}
	}

	if err := uc.store.WriteAtomic(ctx, path, []byte(text)); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	info, err := uc.store.Stat(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat saved config file: %w", err)
	}

	// The written text becomes the new baseline for the next edit cycle.
	uc.doc = document.Parse(text, uc.schema)
	uc.current = uc.doc.Values.Clone()
	uc.path = path
	uc.loadInfo = info
	uc.external = false

	log.Info().
		Str("path", path).
		Str("backup", backupPath).
		Int("modified", len(changes.Modified)).
		Int("added", len(changes.Added)).
		Int("removed", len(changes.Removed)).
		Msg("config file saved")

	if uc.recent != nil {
		if err := uc.recent.MarkSaved(ctx, path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to record save")
		}
	}

	return &SaveOutput{
		Path:       path,
		BackupPath: backupPath,
		Changes:    changes,
		Written:    true,
	}, nil
}

// Watch flags the loaded file as externally modified whenever watcher
// reports a change. It returns once the watch is registered.
func (uc *EditConfigUseCase) Watch(ctx context.Context, watcher port.FileWatcher, onChange func()) error {
	path := uc.Path()
	if path == "" {
		return ErrNoDocument
	}
	return watcher.Watch(ctx, path, func() {
		uc.mu.Lock()
		uc.external = true
		uc.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("path", path).Msg("config file changed externally")
		if onChange != nil {
			onChange()
		}
	})
}

// ExternallyModified reports whether a watcher saw the file change since the
// last load or save.
func (uc *EditConfigUseCase) ExternallyModified() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.external
}

func (uc *EditConfigUseCase) lookup(key string) (entity.SchemaEntry, error) {
	entry, ok := uc.schema.Lookup(key)
	if ok {
		return entry, nil
	}
	if suggestion, found := uc.schema.Suggest(key); found {
		return entity.SchemaEntry{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKey, key, suggestion)
	}
	return entity.SchemaEntry{}, fmt.Errorf("%w %q", ErrUnknownKey, key)
}

func parseAll(entry entity.SchemaEntry, raws []string) ([]value.Value, error) {
	values := make([]value.Value, 0, len(raws))
	var errs []error
	for _, raw := range raws {
		v, err := value.Parse(entry, raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

func stale(loaded, disk port.FileInfo) bool {
	if !loaded.Exists {
		return disk.Exists
	}
	if !disk.Exists {
		return false
	}
	return disk.ModTime.After(loaded.ModTime)
}
