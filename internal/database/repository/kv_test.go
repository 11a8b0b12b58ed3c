package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/whohasphone/internal/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVRepoPutGet(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := NewKVRepo(openTestDB(t))

	_, ok, err := repo.Get(ctx, "app")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Put(ctx, "app", []byte(`{"people":[]}`)))
	got, ok, err := repo.Get(ctx, "app")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"people":[]}`, string(got))

	require.NoError(t, repo.Put(ctx, "app", []byte("second")))
	got, _, err = repo.Get(ctx, "app")
	require.NoError(t, err)
	require.Equal(t, "second", string(got))
}

func TestKVRepoEntryTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewKVRepo(openTestDB(t))
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	require.NoError(t, repo.Put(ctx, "k", nil))
	e, err := repo.Entry(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "k", e.Key)
	require.Empty(t, e.Value)
	require.True(t, fixed.Equal(e.UpdatedAt))
}

func TestKVRepoDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewKVRepo(openTestDB(t))

	require.NoError(t, repo.Put(ctx, "a", []byte("1")))
	require.NoError(t, repo.Put(ctx, "b", []byte("2")))
	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	_, ok, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)
	got, ok, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", string(got))
}

func TestKVRepoPutRefreshesTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewKVRepo(openTestDB(t))
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	repo.now = func() time.Time { return first }
	require.NoError(t, repo.Put(ctx, "k", []byte("1")))
	repo.now = func() time.Time { return second }
	require.NoError(t, repo.Put(ctx, "k", []byte("2")))

	e, err := repo.Entry(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "2", string(e.Value))
	require.True(t, second.Equal(e.UpdatedAt))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "twice.db")
	require.NoError(t, database.RunMigrations(dbPath))
	require.NoError(t, database.RunMigrations(dbPath))
}
