package artworks

import "time"

// Sample is the fallback collection served when the remote store is
// unconfigured or unreachable. Read-only; callers must not mutate it.
// Kept newest-first so it matches the live ordering.
var Sample = []Artwork{
	{
		ID:                  "sample-001",
		Title:               "Atardecer en la bahía",
		Description:         "Óleo sobre lienzo con tonos cálidos.",
		DetailedDescription: "Pieza de gran formato pintada al natural frente a la costa, con capas gruesas de espátula.",
		Category:            CategoryOleos,
		Subcategory:         "espátula",
		Price:               850,
		Year:                2024,
		Dimensions:          "100 x 80 cm",
		Technique:           "Óleo sobre lienzo",
		Status:              StatusDisponible,
		Featured:            true,
		MainImageURL:        "/samples/atardecer-bahia.jpg",
		Gallery: []string{
			"/samples/atardecer-bahia.jpg",
			"/samples/atardecer-bahia-detalle.jpg",
		},
		CreatedAt: time.Date(2024, time.November, 12, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:           "sample-002",
		Title:        "Retrato en azul",
		Description:  "Acrílico figurativo en paleta fría.",
		Category:     CategoryAcrilicos,
		Price:        420,
		Year:         2024,
		Dimensions:   "60 x 50 cm",
		Technique:    "Acrílico sobre tabla",
		Status:       StatusVendida,
		Featured:     true,
		MainImageURL: "/samples/retrato-azul.jpg",
		Gallery:      []string{"/samples/retrato-azul.jpg"},
		CreatedAt:    time.Date(2024, time.September, 3, 9, 30, 0, 0, time.UTC),
	},
	{
		ID:           "sample-003",
		Title:        "Jardín después de la lluvia",
		Description:  "Acuarela sobre papel de algodón.",
		Category:     CategoryAcuarelas,
		Price:        180,
		Year:         2023,
		Dimensions:   "40 x 30 cm",
		Technique:    "Acuarela",
		Status:       StatusDisponible,
		MainImageURL: "/samples/jardin-lluvia.jpg",
		Gallery: []string{
			"/samples/jardin-lluvia.jpg",
			"/samples/jardin-lluvia-marco.jpg",
		},
		CreatedAt: time.Date(2023, time.June, 21, 16, 45, 0, 0, time.UTC),
	},
	{
		ID:           "sample-004",
		Title:        "Estudio de manos",
		Description:  "Dibujo a carboncillo.",
		Category:     CategoryDibujos,
		Price:        95,
		Year:         2023,
		Dimensions:   "30 x 21 cm",
		Technique:    "Carboncillo sobre papel",
		Status:       StatusReservado,
		MainImageURL: "/samples/estudio-manos.jpg",
		Gallery:      []string{"/samples/estudio-manos.jpg"},
		CreatedAt:    time.Date(2023, time.March, 8, 12, 15, 0, 0, time.UTC),
	},
	{
		ID:           "sample-005",
		Title:        "Fragmentos",
		Description:  "Técnica mixta sobre madera recuperada.",
		Category:     CategoryOtros,
		Subcategory:  "collage",
		Price:        310,
		Year:         2022,
		Dimensions:   "70 x 70 cm",
		Technique:    "Técnica mixta",
		Status:       StatusDisponible,
		Featured:     true,
		MainImageURL: "/samples/fragmentos.jpg",
		Gallery: []string{
			"/samples/fragmentos.jpg",
			"/samples/fragmentos-detalle-1.jpg",
			"/samples/fragmentos-detalle-2.jpg",
		},
		CreatedAt: time.Date(2022, time.December, 1, 18, 0, 0, 0, time.UTC),
	},
	{
		ID:           "sample-006",
		Title:        "Marina al amanecer",
		Description:  "Óleo de pequeño formato.",
		Category:     CategoryOleos,
		Price:        260,
		Year:         2022,
		Dimensions:   "35 x 27 cm",
		Technique:    "Óleo sobre lienzo",
		Status:       StatusNoDisponible,
		MainImageURL: "/samples/marina-amanecer.jpg",
		Gallery:      []string{"/samples/marina-amanecer.jpg"},
		CreatedAt:    time.Date(2022, time.August, 17, 8, 0, 0, 0, time.UTC),
	},
}

// SampleByID looks up one sample artwork. The sample entries already embed
// their gallery, so no merge step is needed on this path.
func SampleByID(id string) (*Artwork, bool) {
	for i := range Sample {
		if Sample[i].ID == id {
			return &Sample[i], true
		}
	}
	return nil, false
}
