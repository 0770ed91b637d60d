package artworks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artwork categories used for gallery filtering.
const (
	CategoryOleos     = "oleos"
	CategoryAcrilicos = "acrilicos"
	CategoryAcuarelas = "acuarelas"
	CategoryDibujos   = "dibujos"
	CategoryOtros     = "otros"
)

// Artwork availability labels. Informational text, no transitions enforced.
const (
	StatusDisponible   = "Disponible"
	StatusVendida      = "Vendida"
	StatusReservado    = "Reservado"
	StatusNoDisponible = "No disponible"
)

var Categories = []string{
	CategoryOleos,
	CategoryAcrilicos,
	CategoryAcuarelas,
	CategoryDibujos,
	CategoryOtros,
}

// ValidCategory reports whether s belongs to the fixed category set.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title               string `gorm:"not null" json:"title"`
	Description         string `gorm:"type:text;not null" json:"description"`
	DetailedDescription string `gorm:"type:text" json:"detailed_description,omitempty"`

	Category    string `gorm:"not null;index" json:"category"`
	Subcategory string `json:"subcategory,omitempty"`

	Price float64 `gorm:"not null;default:0" json:"price"`
	Year  int     `json:"year"`

	Dimensions string `json:"dimensions,omitempty"`
	Technique  string `json:"technique,omitempty"`

	Status   string `gorm:"not null;default:'Disponible'" json:"status"`
	Featured bool   `gorm:"not null;default:false;index" json:"featured"`

	MainImageURL string `json:"main_image_url,omitempty"`

	// Gallery is the assembled, deduplicated list of image URLs, main image
	// first. Built from MainImageURL plus the gallery rows, never stored.
	Gallery []string `gorm:"-" json:"gallery"`

	Images []GalleryImage `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate fills the ID where the column default is unavailable:
// Postgres generates it via gen_random_uuid, other drivers do not.
func (a *Artwork) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// GalleryImage is one extra image URL attached to an artwork. Rows are
// removed by the database cascade when the artwork row goes away.
type GalleryImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArtworkID string `gorm:"type:uuid;not null;index:idx_gallery_artwork_pos,priority:1" json:"artwork_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `gorm:"not null;default:0;index:idx_gallery_artwork_pos,priority:2" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
