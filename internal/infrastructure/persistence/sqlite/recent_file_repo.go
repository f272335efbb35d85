package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/repository"
	"github.com/bnema/ghostedit/internal/logging"
)

const recentFileColumns = "id, path, open_count, opened_at, saved_at"

type recentFileRepo struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

// NewRecentFileRepository creates a SQLite-backed recent file list keeping at most limit entries.
// A limit of zero or less keeps everything.
func NewRecentFileRepository(db *sql.DB, limit int) repository.RecentFileRepository {
	return &recentFileRepo{db: db, limit: limit, now: time.Now}
}

func (r *recentFileRepo) Touch(ctx context.Context, path string) (*entity.RecentFile, error) {
	log := logging.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO recent_files (id, path, open_count, opened_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(path) DO UPDATE SET
			open_count = open_count + 1,
			opened_at = excluded.opened_at
		RETURNING `+recentFileColumns,
		uuid.NewString(), path, r.now().UnixNano(),
	)
	file, err := scanRecentFile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to touch recent file: %w", err)
	}

	if r.limit > 0 {
		res, err := r.db.ExecContext(ctx, `
			DELETE FROM recent_files WHERE id NOT IN (
				SELECT id FROM recent_files ORDER BY opened_at DESC LIMIT ?
			)`, r.limit)
		if err != nil {
			return nil, fmt.Errorf("failed to prune recent files: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			log.Debug().Int64("pruned", n).Msg("recent files pruned")
		}
	}

	return file, nil
}

func (r *recentFileRepo) MarkSaved(ctx context.Context, path string) error {
	now := r.now().UnixNano()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recent_files (id, path, open_count, opened_at, saved_at)
		VALUES (?, ?, 0, ?, ?)
		ON CONFLICT(path) DO UPDATE SET saved_at = excluded.saved_at`,
		uuid.NewString(), path, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to mark recent file saved: %w", err)
	}
	return nil
}

func (r *recentFileRepo) List(ctx context.Context, limit int) ([]*entity.RecentFile, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+recentFileColumns+" FROM recent_files ORDER BY opened_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var files []*entity.RecentFile
	for rows.Next() {
		file, err := scanRecentFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

func (r *recentFileRepo) Delete(ctx context.Context, path string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recent_files WHERE path = ?", path); err != nil {
		return fmt.Errorf("failed to delete recent file: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecentFile(row rowScanner) (*entity.RecentFile, error) {
	var (
		file     entity.RecentFile
		openedAt int64
		savedAt  sql.NullInt64
	)
	if err := row.Scan(&file.ID, &file.Path, &file.OpenCount, &openedAt, &savedAt); err != nil {
		return nil, err
	}
	file.OpenedAt = time.Unix(0, openedAt)
	if savedAt.Valid {
		file.SavedAt = time.Unix(0, savedAt.Int64)
	}
	return &file, nil
}
