package store

import (
	"context"
	"fmt"
	"log"

	"portfolio-app/internal/domain/artworks"
)

// MainImageRule is the single ordering contract for uploads: files are
// stored in submission order and the FIRST successfully uploaded file
// becomes the artwork's main image; every later one is a gallery entry.

// Create uploads the images, inserts the artwork row and its gallery rows,
// and invalidates the rendered views. Only the artwork-row insert is fatal;
// a failed single upload or gallery insert is logged and skipped.
func (r *Repository) Create(ctx context.Context, form ArtworkForm, files []ImageFile) (*artworks.Artwork, error) {
	if r.db == nil {
		return nil, ErrStoreUnconfigured
	}

	main, gallery := r.uploadImages(ctx, files)

	a := artworks.Artwork{
		Title:               form.Title,
		Description:         form.Description,
		DetailedDescription: form.DetailedDescription,
		Category:            form.Category,
		Subcategory:         form.Subcategory,
		Price:               form.Price,
		Year:                form.Year,
		Dimensions:          form.Dimensions,
		Technique:           form.Technique,
		Status:              form.Status,
		Featured:            form.Featured,
		MainImageURL:        main,
	}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("creating artwork: %w", err)
	}

	r.insertGalleryRows(ctx, a.ID, gallery)
	r.invalidateViews(ctx)
	return &a, nil
}

// Update replaces the scalar fields and, only when new files are supplied,
// swaps out all stored images: old objects and gallery rows go first, then
// the new files are uploaded under MainImageRule.
func (r *Repository) Update(ctx context.Context, id string, form ArtworkForm, files []ImageFile) error {
	if r.db == nil {
		return ErrStoreUnconfigured
	}

	var a artworks.Artwork
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return fmt.Errorf("loading artwork %s: %w", id, err)
	}

	updates := map[string]any{
		"title":                form.Title,
		"description":          form.Description,
		"detailed_description": form.DetailedDescription,
		"category":             form.Category,
		"subcategory":          form.Subcategory,
		"price":                form.Price,
		"year":                 form.Year,
		"dimensions":           form.Dimensions,
		"technique":            form.Technique,
		"status":               form.Status,
		"featured":             form.Featured,
	}

	var newGallery []string
	if len(files) > 0 {
		r.removeStoredImages(ctx, &a)
		if err := r.db.WithContext(ctx).
			Where("artwork_id = ?", id).
			Delete(&artworks.GalleryImage{}).Error; err != nil {
			log.Printf("clearing gallery rows for %s: %v", id, err)
		}

		main, gallery := r.uploadImages(ctx, files)
		updates["main_image_url"] = main
		newGallery = gallery
	}

	err := r.db.WithContext(ctx).
		Model(&artworks.Artwork{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("updating artwork %s: %w", id, err)
	}

	r.insertGalleryRows(ctx, id, newGallery)
	r.invalidateViews(ctx)
	return nil
}

// Delete removes the stored image objects best-effort, then the artwork row.
// The database cascade takes the gallery rows with it. Only the row delete
// is fatal.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrStoreUnconfigured
	}

	var a artworks.Artwork
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return fmt.Errorf("loading artwork %s: %w", id, err)
	}

	r.removeStoredImages(ctx, &a)

	if err := r.db.WithContext(ctx).Delete(&artworks.Artwork{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting artwork %s: %w", id, err)
	}

	r.invalidateViews(ctx)
	return nil
}

// uploadImages stores each file in submission order, applying MainImageRule.
// A failed upload is logged and skipped; already-uploaded objects stay.
func (r *Repository) uploadImages(ctx context.Context, files []ImageFile) (mainURL string, gallery []string) {
	for i, f := range files {
		name := ObjectName(i, f.Name)
		url, err := r.objects.Upload(ctx, name, f.Reader, f.Size, f.ContentType)
		if err != nil {
			log.Printf("image upload failed, skipping %q: %v", f.Name, err)
			continue
		}
		if mainURL == "" {
			mainURL = url
		} else {
			gallery = append(gallery, url)
		}
	}
	return mainURL, gallery
}

func (r *Repository) insertGalleryRows(ctx context.Context, artworkID string, urls []string) {
	for i, url := range urls {
		row := artworks.GalleryImage{ArtworkID: artworkID, URL: url, Position: i}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			log.Printf("gallery row insert failed for %s: %v", artworkID, err)
		}
	}
}

// removeStoredImages deletes the main and gallery objects from storage.
// Best-effort by design: a URL that maps to no object is skipped, a failed
// removal is logged.
func (r *Repository) removeStoredImages(ctx context.Context, a *artworks.Artwork) {
	urls := []string{a.MainImageURL}

	var rows []artworks.GalleryImage
	if err := r.db.WithContext(ctx).Where("artwork_id = ?", a.ID).Find(&rows).Error; err != nil {
		log.Printf("gallery rows lookup for %s: %v", a.ID, err)
	}
	for _, row := range rows {
		urls = append(urls, row.URL)
	}

	for _, url := range urls {
		if url == "" {
			continue
		}
		name, ok := r.objects.ObjectName(url)
		if !ok {
			continue
		}
		if err := r.objects.Remove(ctx, name); err != nil {
			log.Printf("object removal failed for %s: %v", name, err)
		}
	}
}
