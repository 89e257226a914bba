package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	id := uuid.MustParse("7a3c1f2e-0000-4000-8000-000000000001")
	obj := Object{
		ID:         id,
		Filename:   "My Sale Deed.PDF",
		UploadedAt: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "documents/2025/03/"+id.String()+"_My_Sale_Deed.pdf", objectPath(obj))
}

func TestObjectPathWithoutName(t *testing.T) {
	obj := Object{ID: uuid.New(), Filename: ".txt", UploadedAt: time.Now()}
	assert.True(t, strings.HasSuffix(objectPath(obj), "_document.txt"))
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Upload(ctx, Object{
		ID:       uuid.New(),
		Filename: "notice.txt",
		Body:     strings.NewReader("eviction notice"),
	})
	require.NoError(t, err)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "eviction notice", string(data))

	require.NoError(t, s.Delete(ctx, path))
	_, err = s.Download(ctx, path)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Download(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewStorageNone(t *testing.T) {
	s, err := NewStorage(context.Background(), StorageConfig{Type: StorageTypeNone})
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = NewStorage(context.Background(), StorageConfig{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(context.Background(), StorageConfig{Type: StorageTypeS3})
	assert.Error(t, err)
}
