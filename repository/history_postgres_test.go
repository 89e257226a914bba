package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"legaldoc-backend/migrations"
	"legaldoc-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only when LEGALDOC_TEST_DATABASE_URL points at a disposable database.
func TestPostgresHistoryRepository(t *testing.T) {
	dsn := os.Getenv("LEGALDOC_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LEGALDOC_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, migrations.Up(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	_, err = pool.Exec(ctx, "TRUNCATE history_entries CASCADE")
	require.NoError(t, err)

	repo := NewPostgresHistoryRepository(pool)
	first := &models.HistoryEntry{Name: "asha", Email: "asha@example.com", LoginTime: time.Now().UTC()}
	second := &models.HistoryEntry{Name: "ravi", Email: "ravi@example.com", LoginTime: time.Now().UTC()}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	rating := 4
	updated, err := repo.Update(ctx, first.ID, func(e *models.HistoryEntry) { e.Rating = &rating })
	require.NoError(t, err)
	assert.Equal(t, 4, *updated.Rating)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Nil(t, entries[1].Rating)
}
