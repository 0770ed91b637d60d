package artworks

import (
	"portfolio-app/internal/domain/artworks"
)

// Artwork is the wire shape of one artwork record.
type Artwork = artworks.Artwork

// ---------- responses

// ListResponse carries a list view plus the source tag, so the frontend can
// tell live data from the sample fallback.
type ListResponse struct {
	Source   string    `json:"source"`
	Artworks []Artwork `json:"artworks"`
}

type ArtworkResponse struct {
	Source  string   `json:"source"`
	Artwork *Artwork `json:"artwork"`
}
