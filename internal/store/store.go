package store

import (
	"bytes"
	"context"
	"errors"
	"io"

	"gorm.io/gorm"
)

// Source tags where a read result came from, so callers and tests can tell
// live data from the built-in fallback without scraping logs.
type Source string

const (
	SourceStore  Source = "store"
	SourceSample Source = "sample"
)

// ErrStoreUnconfigured is returned by write operations when no DB_URL was
// provided. Reads never return it; they serve sample data instead.
var ErrStoreUnconfigured = errors.New("remote store not configured")

// View paths invalidated after every successful write.
const (
	ViewAdminList = "/admin/artworks"
	ViewGallery   = "/artworks"
	ViewHome      = "/"
)

// ObjectStore is the object-storage surface the repository needs. Upload
// returns the public URL of the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	// ObjectName maps a public URL back to its storage key. Reports false
	// for URLs that do not belong to the bucket (e.g. sample paths).
	ObjectName(publicURL string) (string, bool)
}

// ViewCache invalidates rendered views after writes.
type ViewCache interface {
	Invalidate(ctx context.Context, paths ...string)
}

// ImageFile is one uploaded image, already compressed by the caller.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// NewImageFile wraps in-memory image bytes for upload.
func NewImageFile(name, contentType string, data []byte) ImageFile {
	return ImageFile{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Reader:      bytes.NewReader(data),
	}
}

// Repository is the single access point for artwork records. A nil db means
// the store is unconfigured: reads fall back to sample data, writes fail.
type Repository struct {
	db      *gorm.DB
	objects ObjectStore
	cache   ViewCache
}

func New(db *gorm.DB, objects ObjectStore, cache ViewCache) *Repository {
	return &Repository{db: db, objects: objects, cache: cache}
}

func (r *Repository) invalidateViews(ctx context.Context) {
	if r.cache != nil {
		r.cache.Invalidate(ctx, ViewAdminList, ViewGallery, ViewHome)
	}
}
