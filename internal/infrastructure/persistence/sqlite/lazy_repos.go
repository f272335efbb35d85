package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/repository"
)

// LazyRecentFileRepository defers opening the database until the first call.
type LazyRecentFileRepository struct {
	provider port.DatabaseProvider
	limit    int

	once sync.Once
	repo repository.RecentFileRepository
	err  error
}

// NewLazyRecentFileRepository returns a RecentFileRepository over provider
// that keeps at most limit entries.
func NewLazyRecentFileRepository(provider port.DatabaseProvider, limit int) repository.RecentFileRepository {
	return &LazyRecentFileRepository{provider: provider, limit: limit}
}

func (r *LazyRecentFileRepository) get(ctx context.Context) (repository.RecentFileRepository, error) {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.err = err
			return
		}
		r.repo = NewRecentFileRepository(db, r.limit)
	})
	return r.repo, r.err
}

func (r *LazyRecentFileRepository) Touch(ctx context.Context, path string) (*entity.RecentFile, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Touch(ctx, path)
}

func (r *LazyRecentFileRepository) MarkSaved(ctx context.Context, path string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.MarkSaved(ctx, path)
}

func (r *LazyRecentFileRepository) List(ctx context.Context, limit int) ([]*entity.RecentFile, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, limit)
}

func (r *LazyRecentFileRepository) Delete(ctx context.Context, path string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, path)
}
