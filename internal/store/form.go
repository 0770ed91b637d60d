package store

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"portfolio-app/internal/domain/artworks"
)

// Form submissions reach this layer as multipart fields, which the JSON
// sanitizer middleware never sees, so markup is stripped here.
var sanitizer = bluemonday.StrictPolicy()

func cleanField(s string) string {
	return strings.TrimSpace(sanitizer.Sanitize(s))
}

// ArtworkForm holds the coerced scalar fields of a create/edit submission.
type ArtworkForm struct {
	Title               string
	Description         string
	DetailedDescription string
	Category            string
	Subcategory         string
	Price               float64
	Year                int
	Dimensions          string
	Technique           string
	Status              string
	Featured            bool
}

// ParseForm coerces raw form values: price to a non-negative number, year to
// an integer defaulting to the current year, status defaulting to
// "Disponible", featured from a checkbox-style flag.
func ParseForm(v url.Values) ArtworkForm {
	f := ArtworkForm{
		Title:               cleanField(v.Get("title")),
		Description:         cleanField(v.Get("description")),
		DetailedDescription: cleanField(v.Get("detailed_description")),
		Category:            cleanField(v.Get("category")),
		Subcategory:         cleanField(v.Get("subcategory")),
		Dimensions:          cleanField(v.Get("dimensions")),
		Technique:           cleanField(v.Get("technique")),
		Status:              cleanField(v.Get("status")),
		Price:               parsePrice(v.Get("price")),
		Year:                parseYear(v.Get("year")),
		Featured:            checkboxTrue(v.Get("featured")),
	}
	if f.Status == "" {
		f.Status = artworks.StatusDisponible
	}
	if !artworks.ValidCategory(f.Category) {
		f.Category = artworks.CategoryOtros
	}
	return f
}

func parsePrice(s string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || p < 0 {
		return 0
	}
	return p
}

func parseYear(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y <= 0 {
		return time.Now().Year()
	}
	return y
}

func checkboxTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// ObjectName builds a unique storage key for an uploaded image: timestamp,
// submission slot and the sanitized original name, keeping the extension.
func ObjectName(index int, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	base := sanitizeName(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = uuid.NewString()
	}
	return fmt.Sprintf("%d-%d-%s%s", time.Now().UnixMilli(), index, base, ext)
}

// sanitizeName lowercases and keeps only [a-z0-9-], collapsing runs of
// other characters into single dashes.
func sanitizeName(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
