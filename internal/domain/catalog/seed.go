// internal/domain/catalog/seed.go
package catalog

import "github.com/shopspring/decimal"

// DefaultProducts returns the launch collection
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "chromatic-drift-hoodie",
			Name:        "Chromatic Drift Hoodie",
			Price:       decimal.RequireFromString("120.00"),
			Image:       "/products/chromatic-drift-hoodie.jpg",
			Colors:      []string{"Bone", "Ink"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Fabric:      "480gsm brushed organic cotton fleece",
			Fit:         "Oversized, dropped shoulder",
			Description: "A hand-painted gradient study printed edge to edge. Every panel is cut so the drift continues across the seams.",
			Care:        []string{"Wash cold, inside out", "Do not tumble dry", "Do not iron print"},
			Artist:      "fred",
			Year:        "2024",
			SortOrder:   1,
		},
		{
			ID:          "logic-gate-tee",
			Name:        "Logic Gate Tee",
			Price:       decimal.RequireFromString("40.00"),
			Image:       "/products/logic-gate-tee.jpg",
			Colors:      []string{"Red", "Chalk", "Charcoal"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Fabric:      "220gsm combed cotton jersey",
			Fit:         "Boxy, cropped length",
			Description: "Circuit diagrams redrawn as ink sketches. Screen printed in three passes with water-based inks.",
			Care:        []string{"Wash cold", "Hang dry"},
			Artist:      "fred",
			Year:        "2024",
			SortOrder:   2,
		},
		{
			ID:          "still-life-overshirt",
			Name:        "Still Life Overshirt",
			Price:       decimal.RequireFromString("165.00"),
			Image:       "/products/still-life-overshirt.jpg",
			Colors:      []string{"Olive", "Sand"},
			Sizes:       []string{"S", "M", "L"},
			Fabric:      "Washed cotton canvas with corozo buttons",
			Fit:         "Relaxed, straight hem",
			Description: "An embroidered still life spreads from the breast pocket onto the back yoke.",
			Care:        []string{"Dry clean recommended", "Cool iron on reverse"},
			Artist:      "Mara Voss",
			Year:        "2025",
			SortOrder:   3,
		},
		{
			ID:          "monochrome-study-cap",
			Name:        "Monochrome Study Cap",
			Price:       decimal.RequireFromString("25.00"),
			Image:       "/products/monochrome-study-cap.jpg",
			Colors:      []string{"Black", "Stone"},
			Sizes:       []string{"One Size"},
			Fabric:      "Cotton twill",
			Fit:         "Six panel, adjustable strap",
			Description: "A single brush stroke embroidered across the crown.",
			Care:        []string{"Spot clean only"},
			SortOrder:   4,
		},
	}
}
