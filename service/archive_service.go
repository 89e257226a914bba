package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"legaldoc-backend/models"
	"legaldoc-backend/repository"
	"legaldoc-backend/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDocumentNotFound is returned when an archived document does not exist
var ErrDocumentNotFound = errors.New("document not found")

// ArchiveRequest carries an analyzed upload into the archive
type ArchiveRequest struct {
	Filename string
	Data     []byte
	Document *Document
	Result   *models.AnalysisResult
	EntryID  *uuid.UUID
}

// DocumentRecorder persists archive metadata
type DocumentRecorder interface {
	Create(ctx context.Context, doc *models.AnalyzedDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AnalyzedDocument, error)
	ListByEntryID(ctx context.Context, entryID uuid.UUID) ([]*models.AnalyzedDocument, error)
}

// ArchiveService uploads documents to storage and records them
type ArchiveService struct {
	storage storage.Storage
	records DocumentRecorder
	logger  *zap.Logger
	now     func() time.Time
}

// NewArchiveService creates a new archive service
func NewArchiveService(store storage.Storage, records DocumentRecorder, logger *zap.Logger) *ArchiveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArchiveService{
		storage: store,
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// Archive stores the uploaded bytes then writes the metadata record.
// The stored object is removed again if the record cannot be written.
func (s *ArchiveService) Archive(ctx context.Context, req ArchiveRequest) (*models.AnalyzedDocument, error) {
	mimeType := "application/octet-stream"
	var pageCount *int
	if req.Document != nil {
		mimeType = req.Document.MimeType
		pageCount = req.Document.PageCount
	}

	id := uuid.New()
	storagePath, err := s.storage.Upload(ctx, storage.Object{
		ID:          id,
		Filename:    req.Filename,
		ContentType: mimeType,
		Size:        int64(len(req.Data)),
		Body:        bytes.NewReader(req.Data),
		UploadedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	doc := &models.AnalyzedDocument{
		ID:          id,
		EntryID:     req.EntryID,
		Filename:    req.Filename,
		MimeType:    mimeType,
		Size:        int64(len(req.Data)),
		PageCount:   pageCount,
		StoragePath: storagePath,
	}
	if req.Result != nil {
		doc.CaseNature = req.Result.CaseNature
		doc.RiskScore = req.Result.RiskScore
	}

	if err := s.records.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to clean up archived document",
				zap.String("storage_path", storagePath),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}
	return doc, nil
}

// Open returns an archived document record and its content.
// Documents archived under another history entry, or under none, are reported
// as not found.
func (s *ArchiveService) Open(ctx context.Context, id, entryID uuid.UUID) (*models.AnalyzedDocument, io.ReadCloser, error) {
	doc, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, err
	}
	if entryID == uuid.Nil || doc.EntryID == nil || *doc.EntryID != entryID {
		return nil, nil, ErrDocumentNotFound
	}
	body, err := s.storage.Download(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, err
	}
	return doc, body, nil
}

// ListForEntry returns the documents archived during one login session, newest first
func (s *ArchiveService) ListForEntry(ctx context.Context, entryID uuid.UUID) ([]*models.AnalyzedDocument, error) {
	docs, err := s.records.ListByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []*models.AnalyzedDocument{}
	}
	return docs, nil
}
