package artworks

import (
	"encoding/json"
	"net/http"

	"portfolio-app/internal/cache"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo  *store.Repository
	cache cache.ViewCache
}

func NewHandler(repo *store.Repository, viewCache cache.ViewCache) *Handler {
	return &Handler{repo: repo, cache: viewCache}
}

// ------------------------------
// GET /artworks
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok := h.cache.GetPage(ctx, store.ViewGallery); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	list, source := h.repo.ListAll(ctx)
	h.renderList(c, store.ViewGallery, list, source)
}

// ------------------------------
// GET /artworks/featured
// ------------------------------
func (h *Handler) ListFeatured(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok := h.cache.GetPage(ctx, store.ViewHome); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	list, source := h.repo.ListFeatured(ctx)
	h.renderList(c, store.ViewHome, list, source)
}

// ------------------------------
// GET /artworks/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	a, source, ok := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, ArtworkResponse{Source: string(source), Artwork: a})
}

func (h *Handler) renderList(c *gin.Context, view string, list []Artwork, source store.Source) {
	resp := ListResponse{Source: string(source), Artworks: list}
	body, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render artworks"})
		return
	}

	// Sample-mode responses are not cached, so the first successful store
	// read takes over as soon as the outage clears.
	if source == store.SourceStore {
		h.cache.SetPage(c.Request.Context(), view, body)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
