package sqlite

import (
	"database/sql"
	"time"

	"github.com/bnema/ghostedit/internal/domain/repository"
)

// NewRecentFileRepositoryWithClock is NewRecentFileRepository with a fixed time source.
func NewRecentFileRepositoryWithClock(db *sql.DB, limit int, now func() time.Time) repository.RecentFileRepository {
	return &recentFileRepo{db: db, limit: limit, now: now}
}
