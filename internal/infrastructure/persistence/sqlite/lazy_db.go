package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/logging"
)

var errDBClosed = errors.New("database closed")

// LazyDB opens the recent-files database on first use, so commands that
// never read or record recent files skip the WASM compilation and
// migrations. An open failure is remembered and returned on every call.
type LazyDB struct {
	path string

	mu        sync.Mutex
	attempted bool
	db        *sql.DB
	err       error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening and migrating the database on the
// first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.attempted {
		l.attempted = true
		l.open(ctx)
	}
	if l.err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", l.path, l.err)
	}
	return l.db, nil
}

// open must be called with l.mu held.
func (l *LazyDB) open(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("db_path", l.path).Logger()
	start := time.Now()

	l.db, l.err = NewConnection(ctx, l.path)
	if l.err != nil {
		log.Error().Err(l.err).Msg("failed to open database")
		return
	}
	logging.Since(&log, "open database", start)
}

// Close closes the connection if one was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempted = true
	if l.db == nil {
		if l.err == nil {
			l.err = errDBClosed
		}
		return nil
	}
	err := l.db.Close()
	l.db, l.err = nil, errDBClosed
	return err
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}
