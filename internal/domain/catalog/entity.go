// internal/domain/catalog/entity.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product id does not resolve
var ErrProductNotFound = errors.New("product not found")

// Product represents one garment in the collection
type Product struct {
	ID          string          `gorm:"primaryKey;size:100" json:"id"`
	Name        string          `gorm:"not null;size:255" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image       string          `gorm:"size:500" json:"image"`
	Colors      []string        `gorm:"serializer:json;not null" json:"colors"`
	Sizes       []string        `gorm:"serializer:json;not null" json:"sizes"`
	Fabric      string          `gorm:"size:255" json:"fabric"`
	Fit         string          `gorm:"size:255" json:"fit"`
	Description string          `gorm:"type:text" json:"description"`
	Care        []string        `gorm:"serializer:json" json:"care"`
	Artist      string          `gorm:"size:255" json:"artist,omitempty"`
	Year        string          `gorm:"size:10" json:"year,omitempty"`
	SortOrder   int             `gorm:"default:0" json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Validate checks the invariants every catalog entry must hold
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product price cannot be negative")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("product must offer at least one color")
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("product must offer at least one size")
	}
	return nil
}

// HasSize reports whether size is offered for the product
func (p *Product) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

// HasColor reports whether color is offered for the product
func (p *Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

// DefaultColor is the colorway preselected on the product panel
func (p *Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}

// Clone returns a copy that shares no slices with p
func (p *Product) Clone() *Product {
	out := *p
	out.Colors = cloneStrings(p.Colors)
	out.Sizes = cloneStrings(p.Sizes)
	out.Care = cloneStrings(p.Care)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

// DisplayArtist returns the credited artist, falling back to the house name
func (p *Product) DisplayArtist() string {
	if p.Artist == "" {
		return "fred"
	}
	return p.Artist
}

// DisplayYear returns the collection year, falling back to 2024
func (p *Product) DisplayYear() string {
	if p.Year == "" {
		return "2024"
	}
	return p.Year
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Catalog resolves products by identifier
type Catalog interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)
}

// Reader is a Catalog that can also list the collection
type Reader interface {
	Catalog
	ListProducts(ctx context.Context) ([]Product, error)
}

// Store is a Reader that accepts writes from catalog administration
type Store interface {
	Reader
	UpsertProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
}
