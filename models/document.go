package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalyzedDocument represents an uploaded document kept in the archive
type AnalyzedDocument struct {
	ID          uuid.UUID  `json:"id"`
	EntryID     *uuid.UUID `json:"entry_id,omitempty"`
	Filename    string     `json:"filename"`
	MimeType    string     `json:"mime_type"`
	Size        int64      `json:"size"`
	PageCount   *int       `json:"page_count,omitempty"`
	StoragePath string     `json:"storage_path"`
	CaseNature  CaseNature `json:"case_nature"`
	RiskScore   int        `json:"risk_score"`
	CreatedAt   time.Time  `json:"created_at"`
}
