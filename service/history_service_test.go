package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"legaldoc-backend/metrics"
	"legaldoc-backend/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryService(t *testing.T, opts ...HistoryServiceOption) *HistoryService {
	t.Helper()
	repo, err := repository.NewFileHistoryRepository(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)
	return NewHistoryService(repo, opts...)
}

func TestHistoryService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	s := newHistoryService(t, HistoryWithClock(func() time.Time { return now }))

	entry, err := s.Login(ctx, "asha", "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, now, entry.LoginTime)
	assert.Nil(t, entry.LogoutTime)

	now = now.Add(time.Hour)
	entry, err = s.Logout(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, entry.LogoutTime)
	assert.Equal(t, now, *entry.LogoutTime)

	entry, err = s.Feedback(ctx, entry.ID, "  clear and fast ")
	require.NoError(t, err)
	assert.Equal(t, "clear and fast", *entry.Feedback)

	entry, err = s.Rate(ctx, entry.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, *entry.Rating)
}

func TestHistoryService_MutationsTargetTheirOwnEntry(t *testing.T) {
	ctx := context.Background()
	s := newHistoryService(t)

	first, err := s.Login(ctx, "asha", "")
	require.NoError(t, err)
	second, err := s.Login(ctx, "ravi", "")
	require.NoError(t, err)

	_, err = s.Feedback(ctx, second.ID, "great")
	require.NoError(t, err)
	_, err = s.Rate(ctx, first.ID, 3)
	require.NoError(t, err)

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "ravi", entries[0].Name)
	assert.Equal(t, "great", *entries[0].Feedback)
	assert.Nil(t, entries[0].Rating)
	assert.Equal(t, "asha", entries[1].Name)
	assert.Nil(t, entries[1].Feedback)
	assert.Equal(t, 3, *entries[1].Rating)
}

func TestHistoryService_Validation(t *testing.T) {
	ctx := context.Background()
	s := newHistoryService(t)

	_, err := s.Login(ctx, " ", "")
	assert.ErrorIs(t, err, ErrMissingInput)

	entry, err := s.Login(ctx, "", "asha@example.com")
	require.NoError(t, err)

	_, err = s.Rate(ctx, entry.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = s.Rate(ctx, entry.ID, 6)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.Feedback(ctx, entry.ID, "")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = s.Logout(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrEntryNotFound)
	_, err = s.Logout(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestHistoryService_Metrics(t *testing.T) {
	m := metrics.New()
	s := newHistoryService(t, HistoryWithMetrics(m))
	ctx := context.Background()

	entry, err := s.Login(ctx, "asha", "")
	require.NoError(t, err)
	_, err = s.Logout(ctx, entry.ID)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "legaldoc_history_events_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
