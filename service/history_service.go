package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"legaldoc-backend/metrics"
	"legaldoc-backend/models"
	"legaldoc-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryService records login, logout, feedback and rating events.
// Each mutation targets the entry created by the caller's own login.
type HistoryService struct {
	repo    repository.HistoryRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// HistoryServiceOption is a functional option for HistoryService
type HistoryServiceOption func(*HistoryService)

// HistoryWithMetrics sets the metrics collector
func HistoryWithMetrics(m *metrics.Metrics) HistoryServiceOption {
	return func(s *HistoryService) {
		s.metrics = m
	}
}

// HistoryWithLogger sets the logger
func HistoryWithLogger(logger *zap.Logger) HistoryServiceOption {
	return func(s *HistoryService) {
		s.logger = logger
	}
}

// HistoryWithClock overrides the time source
func HistoryWithClock(now func() time.Time) HistoryServiceOption {
	return func(s *HistoryService) {
		s.now = now
	}
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repository.HistoryRepository, opts ...HistoryServiceOption) *HistoryService {
	s := &HistoryService{
		repo:   repo,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login appends a new entry and returns it
func (s *HistoryService) Login(ctx context.Context, name, email string) (*models.HistoryEntry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" && email == "" {
		return nil, ErrMissingInput
	}

	entry := &models.HistoryEntry{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		LoginTime: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	s.metrics.HistoryEvent("login")
	s.logger.Info("login recorded", zap.String("entry_id", entry.ID.String()))
	return entry, nil
}

// Logout stamps the logout time on the entry
func (s *HistoryService) Logout(ctx context.Context, id uuid.UUID) (*models.HistoryEntry, error) {
	at := s.now().UTC()
	return s.update(ctx, id, "logout", func(e *models.HistoryEntry) {
		e.LogoutTime = &at
	})
}

// Feedback stores free-text feedback on the entry
func (s *HistoryService) Feedback(ctx context.Context, id uuid.UUID, feedback string) (*models.HistoryEntry, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, ErrMissingInput
	}
	return s.update(ctx, id, "feedback", func(e *models.HistoryEntry) {
		e.Feedback = &feedback
	})
}

// Rate stores a star rating between 1 and 5 on the entry
func (s *HistoryService) Rate(ctx context.Context, id uuid.UUID, stars int) (*models.HistoryEntry, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidRating
	}
	return s.update(ctx, id, "rating", func(e *models.HistoryEntry) {
		e.Rating = &stars
	})
}

// Entries returns the full log, newest first
func (s *HistoryService) Entries(ctx context.Context) ([]*models.HistoryEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *HistoryService) update(ctx context.Context, id uuid.UUID, event string, mutate func(*models.HistoryEntry)) (*models.HistoryEntry, error) {
	if id == uuid.Nil {
		return nil, ErrEntryNotFound
	}
	entry, err := s.repo.Update(ctx, id, mutate)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to record %s: %w", event, err)
	}
	s.metrics.HistoryEvent(event)
	return entry, nil
}
