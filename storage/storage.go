package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage keeps uploaded documents
type Storage interface {
	// Upload stores a document and returns its storage path
	Upload(ctx context.Context, obj Object) (string, error)

	// Download retrieves a document by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a document by storage path
	Delete(ctx context.Context, storagePath string) error
}

// Object describes a document to upload
type Object struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedAt  time.Time
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeNone  StorageType = "none"
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// ErrNotFound is returned when a storage path does not exist
var ErrNotFound = errors.New("document not found in storage")

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a storage backend; StorageTypeNone yields a nil Storage
func NewStorage(ctx context.Context, cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeNone, "":
		return nil, nil
	case StorageTypeLocal:
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/documents"
		}
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("storage: s3 bucket is required for S3 storage")
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("storage: unknown storage type: %s", cfg.Type)
	}
}

// objectPath returns the storage path of a document: documents/YYYY/MM/<id>_<name><ext>
func objectPath(obj Object) string {
	at := obj.UploadedAt
	if at.IsZero() {
		at = time.Now()
	}
	ext := strings.ToLower(filepath.Ext(obj.Filename))
	base := sanitizeName(strings.TrimSuffix(filepath.Base(obj.Filename), filepath.Ext(obj.Filename)))
	if base == "" {
		base = "document"
	}
	return fmt.Sprintf("documents/%04d/%02d/%s_%s%s", at.Year(), at.Month(), obj.ID, base, ext)
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

// contentTypeFor determines content type from filename
func contentTypeFor(obj Object) string {
	if obj.ContentType != "" {
		return obj.ContentType
	}
	switch strings.ToLower(filepath.Ext(obj.Filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
