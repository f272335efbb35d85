package repository

import (
	"context"

	"github.com/bnema/ghostedit/internal/domain/entity"
)

//go:generate mockgen -source=recent_file.go -destination=mocks/mock_recent_file.go -package=mocks

// RecentFileRepository persists the list of recently edited config files.
type RecentFileRepository interface {
	// Touch records that path was opened and returns the updated record.
	Touch(ctx context.Context, path string) (*entity.RecentFile, error)

	// MarkSaved records a successful save of path.
	MarkSaved(ctx context.Context, path string) error

	// List returns up to limit files, most recently opened first.
	List(ctx context.Context, limit int) ([]*entity.RecentFile, error)

	// Delete forgets path.
	Delete(ctx context.Context, path string) error
}
