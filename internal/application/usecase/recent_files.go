package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/repository"
	"github.com/bnema/ghostedit/internal/logging"
)

const defaultRecentLimit = 10

// RecentFilesUseCase lists and prunes the recently edited config files.
type RecentFilesUseCase struct {
	repo repository.RecentFileRepository
}

// NewRecentFilesUseCase creates a new RecentFilesUseCase.
func NewRecentFilesUseCase(repo repository.RecentFileRepository) *RecentFilesUseCase {
	return &RecentFilesUseCase{repo: repo}
}

// List returns up to limit files, most recently opened first.
func (uc *RecentFilesUseCase) List(ctx context.Context, limit int) ([]*entity.RecentFile, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	files, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent files: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("count", len(files)).Msg("recent files listed")
	return files, nil
}

// Forget removes path from the list.
func (uc *RecentFilesUseCase) Forget(ctx context.Context, path string) error {
	if err := uc.repo.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to forget recent file: %w", err)
	}
	return nil
}
