package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"legaldoc-backend/models"

	"github.com/google/uuid"
)

// FileHistoryRepository keeps the history log as a JSON array in a single file.
// Every mutation loads the whole file, applies the change and rewrites it through
// a temporary file and rename, serialized by a mutex.
type FileHistoryRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileHistoryRepository creates a repository backed by the file at path
func NewFileHistoryRepository(path string) (*FileHistoryRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	return &FileHistoryRepository{path: path}, nil
}

// Append adds an entry to the end of the log
func (r *FileHistoryRepository) Append(_ context.Context, entry *models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stored := *entry
	entries = append(entries, &stored)
	return r.save(entries)
}

// Get returns a copy of the entry with the given ID
func (r *FileHistoryRepository) Get(_ context.Context, id uuid.UUID) (*models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrHistoryEntryNotFound
}

// Update mutates the entry with the given ID and persists the log
func (r *FileHistoryRepository) Update(_ context.Context, id uuid.UUID, mutate func(*models.HistoryEntry)) (*models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID != id {
			continue
		}
		mutate(e)
		e.ID = id
		if err := r.save(entries); err != nil {
			return nil, err
		}
		updated := *e
		return &updated, nil
	}
	return nil, ErrHistoryEntryNotFound
}

// List returns every entry, oldest first
func (r *FileHistoryRepository) List(_ context.Context) ([]*models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileHistoryRepository) load() ([]*models.HistoryEntry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*models.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(data) == 0 {
		return []*models.HistoryEntry{}, nil
	}

	var entries []*models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return entries, nil
}

func (r *FileHistoryRepository) save(entries []*models.HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create history temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace history: %w", err)
	}
	return nil
}
