// internal/domain/cart/entity.go
package cart

import (
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Key identifies a line item. Two additions with the same key merge.
type Key struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// Line is one purchasable selection
type Line struct {
	Product  *catalog.Product `json:"product"`
	Size     string           `json:"size"`
	Color    string           `json:"color"`
	Quantity int              `json:"quantity"`
}

// Key returns the identity key of the line
func (l Line) Key() Key {
	return Key{ProductID: l.Product.ID, Size: l.Size, Color: l.Color}
}

// Subtotal is the line price times its quantity
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// State is an observable view of the cart
type State struct {
	Lines      []Line          `json:"lines"`
	IsOpen     bool            `json:"is_open"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Snapshot is the persisted form of a cart. Products are referenced by id and
// re-resolved against the catalog when the cart is restored.
type Snapshot struct {
	Lines  []SnapshotLine `json:"lines"`
	IsOpen bool           `json:"isOpen,omitempty"`
}

// SnapshotLine is one persisted line
type SnapshotLine struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}
