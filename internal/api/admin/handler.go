package admin

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"

	"portfolio-app/internal/api/artworks"
	"portfolio-app/internal/cache"
	"portfolio-app/internal/imaging"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// imagesField is the single multipart field the panel submits files under.
// Array order is significant: the first file becomes the main image.
const imagesField = "images"

type Handler struct {
	repo  *store.Repository
	cache cache.ViewCache
}

func NewHandler(repo *store.Repository, viewCache cache.ViewCache) *Handler {
	return &Handler{repo: repo, cache: viewCache}
}

// ------------------------------
// GET /admin/artworks
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok := h.cache.GetPage(ctx, store.ViewAdminList); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	list, source := h.repo.ListAll(ctx)
	resp := artworks.ListResponse{Source: string(source), Artworks: list}
	body, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render artworks"})
		return
	}
	if source == store.SourceStore {
		h.cache.SetPage(ctx, store.ViewAdminList, body)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// ------------------------------
// POST /admin/artworks
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	values, files, ok := h.bindArtworkForm(c)
	if !ok {
		return
	}

	form := store.ParseForm(values)
	if form.Title == "" || form.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), form, files); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	c.Redirect(http.StatusSeeOther, store.ViewAdminList)
}

// ------------------------------
// PUT /admin/artworks/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	values, files, ok := h.bindArtworkForm(c)
	if !ok {
		return
	}

	form := store.ParseForm(values)
	if form.Title == "" || form.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	err := h.repo.Update(c.Request.Context(), id, form, files)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}

	c.Redirect(http.StatusSeeOther, store.ViewAdminList)
}

// ------------------------------
// DELETE /admin/artworks/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.Redirect(http.StatusSeeOther, store.ViewAdminList)
}

// bindArtworkForm parses the multipart submission and compresses each image
// before it goes anywhere near storage. A file that fails compression is
// rejected on its own; the rest of the submission continues.
func (h *Handler) bindArtworkForm(c *gin.Context) (url.Values, []store.ImageFile, bool) {
	mf, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form submission"})
		return nil, nil, false
	}

	var files []store.ImageFile
	for _, fh := range mf.File[imagesField] {
		f, err := fh.Open()
		if err != nil {
			log.Printf("cannot open upload %q: %v", fh.Filename, err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("cannot read upload %q: %v", fh.Filename, err)
			continue
		}

		res, err := imaging.Compress(data, fh.Filename)
		if err != nil {
			log.Printf("compression rejected %q: %v", fh.Filename, err)
			continue
		}

		files = append(files, store.NewImageFile(res.Filename, res.MIME, res.Data))
	}

	return url.Values(mf.Value), files, true
}
