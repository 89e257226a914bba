package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"legaldoc-backend/models"
	"legaldoc-backend/repository"
	"legaldoc-backend/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRecorder struct {
	docs map[uuid.UUID]*models.AnalyzedDocument
	err  error
}

func (m *memoryRecorder) Create(_ context.Context, doc *models.AnalyzedDocument) error {
	if m.err != nil {
		return m.err
	}
	if m.docs == nil {
		m.docs = make(map[uuid.UUID]*models.AnalyzedDocument)
	}
	m.docs[doc.ID] = doc
	return nil
}

func (m *memoryRecorder) GetByID(_ context.Context, id uuid.UUID) (*models.AnalyzedDocument, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *memoryRecorder) ListByEntryID(_ context.Context, entryID uuid.UUID) ([]*models.AnalyzedDocument, error) {
	var docs []*models.AnalyzedDocument
	for _, doc := range m.docs {
		if doc.EntryID != nil && *doc.EntryID == entryID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func TestArchiveService_ArchiveAndOpen(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	records := &memoryRecorder{}
	s := NewArchiveService(store, records, nil)
	ctx := context.Background()

	pages := 2
	entryID := uuid.New()
	doc, err := s.Archive(ctx, ArchiveRequest{
		Filename: "Sale Deed.pdf",
		Data:     []byte("%PDF-fake"),
		Document: &Document{MimeType: "application/pdf", PageCount: &pages},
		Result:   &models.AnalysisResult{CaseNature: models.CaseProperty, RiskScore: 30},
		EntryID:  &entryID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.CaseProperty, doc.CaseNature)
	assert.Equal(t, 30, doc.RiskScore)
	assert.Equal(t, int64(9), doc.Size)
	assert.Equal(t, &pages, doc.PageCount)
	assert.Contains(t, doc.StoragePath, doc.ID.String())

	got, body, err := s.Open(ctx, doc.ID, entryID)
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.Equal(t, "Sale Deed.pdf", got.Filename)

	_, _, err = s.Open(ctx, uuid.New(), entryID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestArchiveService_OpenIsScopedToEntry(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	s := NewArchiveService(store, &memoryRecorder{}, nil)
	ctx := context.Background()

	owner := uuid.New()
	owned, err := s.Archive(ctx, ArchiveRequest{Filename: "fir.txt", Data: []byte("private"), EntryID: &owner})
	require.NoError(t, err)
	anonymous, err := s.Archive(ctx, ArchiveRequest{Filename: "anon.txt", Data: []byte("anon")})
	require.NoError(t, err)

	_, _, err = s.Open(ctx, owned.ID, uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, _, err = s.Open(ctx, owned.ID, uuid.Nil)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, _, err = s.Open(ctx, anonymous.ID, owner)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, body, err := s.Open(ctx, owned.ID, owner)
	require.NoError(t, err)
	body.Close()
}

func TestArchiveService_CleansUpWhenRecordFails(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	records := &memoryRecorder{err: errors.New("db down")}
	s := NewArchiveService(store, records, nil)

	_, err = s.Archive(context.Background(), ArchiveRequest{Filename: "a.txt", Data: []byte("theft")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestArchiveService_ListForEntry(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	s := NewArchiveService(store, &memoryRecorder{}, nil)
	ctx := context.Background()

	entryID := uuid.New()
	_, err = s.Archive(ctx, ArchiveRequest{Filename: "a.txt", Data: []byte("one"), EntryID: &entryID})
	require.NoError(t, err)
	_, err = s.Archive(ctx, ArchiveRequest{Filename: "b.txt", Data: []byte("two")})
	require.NoError(t, err)

	docs, err := s.ListForEntry(ctx, entryID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.txt", docs[0].Filename)

	docs, err = s.ListForEntry(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}
