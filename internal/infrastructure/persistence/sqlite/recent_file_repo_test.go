package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/ghostedit/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "ghostedit.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// clock returns a time source advancing one second per call.
func clock() func() time.Time {
	t := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestRecentFileRepository_TouchCreatesAndIncrements(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewRecentFileRepositoryWithClock(openTestDB(t), 0, clock())

	first, err := repo.Touch(ctx, "/home/me/.config/ghostty/config")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, int64(1), first.OpenCount)
	assert.False(t, first.Saved())

	second, err := repo.Touch(ctx, "/home/me/.config/ghostty/config")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.OpenCount)
	assert.True(t, second.OpenedAt.After(first.OpenedAt))
}

func TestRecentFileRepository_ListOrderAndLimit(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewRecentFileRepositoryWithClock(openTestDB(t), 0, clock())

	for _, p := range []string{"/a", "/b", "/c"} {
		_, err := repo.Touch(ctx, p)
		require.NoError(t, err)
	}
	_, err := repo.Touch(ctx, "/a")
	require.NoError(t, err)

	files, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "/a", files[0].Path)
	assert.Equal(t, "/c", files[1].Path)
	assert.Equal(t, "/b", files[2].Path)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRecentFileRepository_TouchPrunesBeyondLimit(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewRecentFileRepositoryWithClock(openTestDB(t), 2, clock())

	for _, p := range []string{"/a", "/b", "/c"} {
		_, err := repo.Touch(ctx, p)
		require.NoError(t, err)
	}

	files, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/c", files[0].Path)
	assert.Equal(t, "/b", files[1].Path)
}

func TestRecentFileRepository_MarkSaved(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewRecentFileRepositoryWithClock(openTestDB(t), 0, clock())

	_, err := repo.Touch(ctx, "/a")
	require.NoError(t, err)
	require.NoError(t, repo.MarkSaved(ctx, "/a"))
	// Saving a file never opened still records it.
	require.NoError(t, repo.MarkSaved(ctx, "/new"))

	files, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, f.Saved(), f.Path)
	}
}

func TestRecentFileRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewRecentFileRepository(openTestDB(t), 0)

	_, err := repo.Touch(ctx, "/a")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "/a"))
	require.NoError(t, repo.Delete(ctx, "/missing"))

	files, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLazyRecentFileRepository(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "ghostedit.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyRecentFileRepository(lazy, 5)
	assert.False(t, lazy.IsInitialized())

	_, err := repo.Touch(ctx, "/a")
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	files, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := sqlite.LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "recent_files", migrations[0].Name)
}
