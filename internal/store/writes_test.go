package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"portfolio-app/database"
	"portfolio-app/internal/domain/artworks"
)

type fakeObjects struct {
	baseURL   string
	uploaded  []string
	removed   []string
	failOn    map[int]bool // upload call index -> fail
	removeErr error        // returned by every Remove when set
	calls     int
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{baseURL: "https://cdn.test/artworks/", failOn: map[int]bool{}}
}

func (f *fakeObjects) Upload(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	call := f.calls
	f.calls++
	if f.failOn[call] {
		return "", errors.New("upload refused")
	}
	f.uploaded = append(f.uploaded, objectName)
	return f.baseURL + objectName, nil
}

func (f *fakeObjects) Remove(_ context.Context, objectName string) error {
	f.removed = append(f.removed, objectName)
	return f.removeErr
}

func (f *fakeObjects) ObjectName(publicURL string) (string, bool) {
	name := strings.TrimPrefix(publicURL, f.baseURL)
	if name == publicURL || name == "" {
		return "", false
	}
	return name, true
}

func imageFiles(names ...string) []ImageFile {
	files := make([]ImageFile, len(names))
	for i, n := range names {
		files[i] = NewImageFile(n, "image/jpeg", []byte("fake-jpeg-bytes"))
	}
	return files
}

func TestUploadImagesMainImageRule(t *testing.T) {
	objects := newFakeObjects()
	repo := New(nil, objects, nil)

	main, gallery := repo.uploadImages(context.Background(), imageFiles("a.jpg", "b.jpg", "c.jpg"))
	if main == "" || !strings.Contains(main, "-0-a") {
		t.Errorf("expected first file as main image, got %q", main)
	}
	if len(gallery) != 2 {
		t.Fatalf("expected 2 gallery entries, got %d", len(gallery))
	}
	if !strings.Contains(gallery[0], "-1-b") || !strings.Contains(gallery[1], "-2-c") {
		t.Errorf("gallery order not preserved: %v", gallery)
	}
}

func TestUploadImagesSkipsFailedUpload(t *testing.T) {
	objects := newFakeObjects()
	objects.failOn[0] = true
	repo := New(nil, objects, nil)

	main, gallery := repo.uploadImages(context.Background(), imageFiles("a.jpg", "b.jpg"))
	if !strings.Contains(main, "-1-b") {
		t.Errorf("expected first successful upload as main image, got %q", main)
	}
	if len(gallery) != 0 {
		t.Errorf("expected empty gallery, got %v", gallery)
	}
	if len(objects.uploaded) != 1 {
		t.Errorf("expected exactly one stored object, got %v", objects.uploaded)
	}
}

func TestUploadImagesAllFail(t *testing.T) {
	objects := newFakeObjects()
	objects.failOn[0] = true
	objects.failOn[1] = true
	repo := New(nil, objects, nil)

	main, gallery := repo.uploadImages(context.Background(), imageFiles("a.jpg", "b.jpg"))
	if main != "" || len(gallery) != 0 {
		t.Errorf("expected no URLs when every upload fails, got %q / %v", main, gallery)
	}
}

func seedForm() ArtworkForm {
	return ArtworkForm{
		Title:       "Marina",
		Description: "Óleo pequeño",
		Category:    artworks.CategoryOleos,
		Price:       260,
		Year:        2024,
		Status:      artworks.StatusDisponible,
	}
}

func TestCreateWithoutImages(t *testing.T) {
	db := database.NewTestDB(t)
	repo := New(db, newFakeObjects(), nil)

	a, err := repo.Create(context.Background(), seedForm(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" {
		t.Error("expected a generated id")
	}
	if a.MainImageURL != "" {
		t.Errorf("expected no main image, got %q", a.MainImageURL)
	}

	var saved artworks.Artwork
	if err := db.First(&saved, "id = ?", a.ID).Error; err != nil {
		t.Fatalf("reloading row: %v", err)
	}
	if saved.MainImageURL != "" {
		t.Errorf("expected empty main image on row, got %q", saved.MainImageURL)
	}
	if saved.Title != "Marina" {
		t.Errorf("expected title persisted, got %q", saved.Title)
	}
}

func TestUpdateWithoutFilesKeepsImages(t *testing.T) {
	db := database.NewTestDB(t)
	objects := newFakeObjects()
	repo := New(db, objects, nil)
	ctx := context.Background()

	a, err := repo.Create(ctx, seedForm(), imageFiles("main.jpg", "extra.jpg"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	form := seedForm()
	form.Title = "Marina al amanecer"
	form.Status = artworks.StatusVendida
	if err := repo.Update(ctx, a.ID, form, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, source, ok := repo.GetByID(ctx, a.ID)
	if !ok || source != SourceStore {
		t.Fatalf("expected live hit, got ok=%v source=%s", ok, source)
	}
	if got.Title != "Marina al amanecer" || got.Status != artworks.StatusVendida {
		t.Errorf("expected scalar fields updated, got %q / %q", got.Title, got.Status)
	}
	if got.MainImageURL != a.MainImageURL {
		t.Errorf("expected main image untouched, got %q", got.MainImageURL)
	}
	if len(got.Gallery) != 2 || got.Gallery[0] != a.MainImageURL {
		t.Errorf("expected gallery untouched with main image first, got %v", got.Gallery)
	}
	if len(objects.removed) != 0 {
		t.Errorf("expected no object removals, got %v", objects.removed)
	}
}

func TestUpdateWithFilesReplacesImages(t *testing.T) {
	db := database.NewTestDB(t)
	objects := newFakeObjects()
	repo := New(db, objects, nil)
	ctx := context.Background()

	a, err := repo.Create(ctx, seedForm(), imageFiles("old-main.jpg", "old-extra.jpg"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(ctx, a.ID, seedForm(), imageFiles("new-main.jpg")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(objects.removed) != 2 {
		t.Errorf("expected both old objects removed, got %v", objects.removed)
	}

	got, _, ok := repo.GetByID(ctx, a.ID)
	if !ok {
		t.Fatal("expected artwork to survive the update")
	}
	if !strings.Contains(got.MainImageURL, "new-main") {
		t.Errorf("expected new main image, got %q", got.MainImageURL)
	}
	if len(got.Gallery) != 1 {
		t.Errorf("expected old gallery rows gone, got %v", got.Gallery)
	}
}

func TestDeleteToleratesFailedRemove(t *testing.T) {
	db := database.NewTestDB(t)
	objects := newFakeObjects()
	repo := New(db, objects, nil)
	ctx := context.Background()

	a, err := repo.Create(ctx, seedForm(), imageFiles("main.jpg", "extra.jpg"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Storage no longer has the objects; row deletion must still go through.
	objects.removeErr = errors.New("object already gone")

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("expected delete to succeed despite storage failures: %v", err)
	}
	if len(objects.removed) != 2 {
		t.Errorf("expected removal attempted for main and gallery objects, got %v", objects.removed)
	}

	if _, _, ok := repo.GetByID(ctx, a.ID); ok {
		t.Error("expected artwork row gone")
	}

	var rows []artworks.GalleryImage
	if err := db.Where("artwork_id = ?", a.ID).Find(&rows).Error; err != nil {
		t.Fatalf("querying gallery rows: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected cascade to drop gallery rows, got %d", len(rows))
	}
}

func TestWritesRequireConfiguredStore(t *testing.T) {
	repo := New(nil, newFakeObjects(), nil)
	ctx := context.Background()

	if _, err := repo.Create(ctx, ArtworkForm{}, nil); !errors.Is(err, ErrStoreUnconfigured) {
		t.Errorf("Create: expected ErrStoreUnconfigured, got %v", err)
	}
	if err := repo.Update(ctx, "x", ArtworkForm{}, nil); !errors.Is(err, ErrStoreUnconfigured) {
		t.Errorf("Update: expected ErrStoreUnconfigured, got %v", err)
	}
	if err := repo.Delete(ctx, "x"); !errors.Is(err, ErrStoreUnconfigured) {
		t.Errorf("Delete: expected ErrStoreUnconfigured, got %v", err)
	}
}
