package repository

import (
	"context"
	"errors"

	"legaldoc-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDocumentNotFound is returned when no archived document matches
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository handles database operations for archived documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.AnalyzedDocument) error {
	query := `
		INSERT INTO analyzed_documents (
			id, entry_id, filename, mime_type, size, page_count, storage_path, case_nature, risk_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.EntryID,
		doc.Filename,
		doc.MimeType,
		doc.Size,
		doc.PageCount,
		doc.StoragePath,
		doc.CaseNature,
		doc.RiskScore,
	).Scan(&doc.CreatedAt)
}

// GetByID retrieves a document record by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AnalyzedDocument, error) {
	query := `
		SELECT id, entry_id, filename, mime_type, size, page_count, storage_path,
			case_nature, risk_score, created_at
		FROM analyzed_documents
		WHERE id = $1`

	doc, err := scanDocument(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	return doc, err
}

// ListByEntryID retrieves the documents analyzed during one login session
func (r *DocumentRepository) ListByEntryID(ctx context.Context, entryID uuid.UUID) ([]*models.AnalyzedDocument, error) {
	query := `
		SELECT id, entry_id, filename, mime_type, size, page_count, storage_path,
			case_nature, risk_score, created_at
		FROM analyzed_documents
		WHERE entry_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.AnalyzedDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func scanDocument(row pgx.Row) (*models.AnalyzedDocument, error) {
	doc := &models.AnalyzedDocument{}
	err := row.Scan(
		&doc.ID,
		&doc.EntryID,
		&doc.Filename,
		&doc.MimeType,
		&doc.Size,
		&doc.PageCount,
		&doc.StoragePath,
		&doc.CaseNature,
		&doc.RiskScore,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
