package store

import (
	"context"
	"errors"
	"log"

	"portfolio-app/internal/domain/artworks"

	"gorm.io/gorm"
)

// ListAll returns every artwork, newest first. Store failures are absorbed:
// the built-in sample collection is served instead and the source is tagged
// accordingly.
func (r *Repository) ListAll(ctx context.Context) ([]artworks.Artwork, Source) {
	if r.db == nil {
		return artworks.Sample, SourceSample
	}

	var list []artworks.Artwork
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		log.Printf("artwork list query failed, serving sample data: %v", err)
		return artworks.Sample, SourceSample
	}
	return list, SourceStore
}

// ListFeatured returns the homepage highlight set, newest first, with the
// same fallback policy as ListAll.
func (r *Repository) ListFeatured(ctx context.Context) ([]artworks.Artwork, Source) {
	if r.db == nil {
		return featuredSample(), SourceSample
	}

	var list []artworks.Artwork
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		log.Printf("featured query failed, serving sample data: %v", err)
		return featuredSample(), SourceSample
	}
	return list, SourceStore
}

// GetByID returns one artwork with its assembled gallery. A store failure
// falls back to the sample collection; an id absent from both sources
// reports not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*artworks.Artwork, Source, bool) {
	if r.db == nil {
		a, ok := artworks.SampleByID(id)
		return a, SourceSample, ok
	}

	var a artworks.Artwork
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, SourceStore, false
	}
	if err != nil {
		log.Printf("artwork lookup failed, trying sample data: %v", err)
		sa, ok := artworks.SampleByID(id)
		return sa, SourceSample, ok
	}

	var rows []artworks.GalleryImage
	err = r.db.WithContext(ctx).
		Where("artwork_id = ?", id).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		// The scalar row already loaded; a gallery read failure only costs
		// the extra images.
		log.Printf("gallery query failed for %s: %v", id, err)
		rows = nil
	}

	urls := make([]string, 0, len(rows))
	for _, row := range rows {
		urls = append(urls, row.URL)
	}
	a.Gallery = artworks.MergeGallery(a.MainImageURL, urls)
	return &a, SourceStore, true
}

func featuredSample() []artworks.Artwork {
	var out []artworks.Artwork
	for _, a := range artworks.Sample {
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}
