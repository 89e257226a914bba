package repository

import (
	"context"
	"errors"
	"fmt"

	"legaldoc-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresHistoryRepository handles database operations for history entries
type PostgresHistoryRepository struct {
	db *pgxpool.Pool
}

// NewPostgresHistoryRepository creates a new history repository
func NewPostgresHistoryRepository(db *pgxpool.Pool) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// Append inserts a new history entry
func (r *PostgresHistoryRepository) Append(ctx context.Context, entry *models.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	query := `
		INSERT INTO history_entries (
			id, name, email, login_time, logout_time, feedback, rating
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		entry.ID,
		entry.Name,
		entry.Email,
		entry.LoginTime,
		entry.LogoutTime,
		entry.Feedback,
		entry.Rating,
	)
	return err
}

// Get retrieves a history entry by ID
func (r *PostgresHistoryRepository) Get(ctx context.Context, id uuid.UUID) (*models.HistoryEntry, error) {
	query := `
		SELECT id, name, email, login_time, logout_time, feedback, rating
		FROM history_entries
		WHERE id = $1`

	entry, err := scanHistoryEntry(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHistoryEntryNotFound
	}
	return entry, err
}

// Update locks the row, applies mutate and writes the mutable columns back
func (r *PostgresHistoryRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*models.HistoryEntry)) (*models.HistoryEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT id, name, email, login_time, logout_time, feedback, rating
		FROM history_entries
		WHERE id = $1
		FOR UPDATE`

	entry, err := scanHistoryEntry(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHistoryEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	mutate(entry)
	entry.ID = id

	update := `
		UPDATE history_entries SET
			logout_time = $2,
			feedback = $3,
			rating = $4
		WHERE id = $1`

	if _, err := tx.Exec(ctx, update, id, entry.LogoutTime, entry.Feedback, entry.Rating); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return entry, nil
}

// List retrieves all history entries in insertion order
func (r *PostgresHistoryRepository) List(ctx context.Context) ([]*models.HistoryEntry, error) {
	query := `
		SELECT id, name, email, login_time, logout_time, feedback, rating
		FROM history_entries
		ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.HistoryEntry, 0)
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanHistoryEntry(row pgx.Row) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{}
	err := row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.Email,
		&entry.LoginTime,
		&entry.LogoutTime,
		&entry.Feedback,
		&entry.Rating,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
