package repository

import (
	"context"
	"errors"

	"legaldoc-backend/models"

	"github.com/google/uuid"
)

// ErrHistoryEntryNotFound is returned when no history entry has the requested ID
var ErrHistoryEntryNotFound = errors.New("history entry not found")

// HistoryRepository persists the login/feedback/rating log.
// Update applies mutate to the entry with the given ID atomically with respect
// to other calls on the same repository.
type HistoryRepository interface {
	Append(ctx context.Context, entry *models.HistoryEntry) error
	Get(ctx context.Context, id uuid.UUID) (*models.HistoryEntry, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*models.HistoryEntry)) (*models.HistoryEntry, error)
	// List returns all entries in log order, oldest first
	List(ctx context.Context) ([]*models.HistoryEntry, error)
}
