// internal/interfaces/http/handlers/responses.go
package handlers

import (
	"github.com/logicbyfred/gallery-store/internal/domain/cart"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
)

// ProductResponse is the public shape of a product. Prices are fixed to two
// decimals so clients never see "40" for 40.00.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Fabric      string   `json:"fabric"`
	Fit         string   `json:"fit"`
	Description string   `json:"description"`
	Care        []string `json:"care"`
	Artist      string   `json:"artist"`
	Year        string   `json:"year"`
}

func newProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
		Colors:      p.Colors,
		Sizes:       p.Sizes,
		Fabric:      p.Fabric,
		Fit:         p.Fit,
		Description: p.Description,
		Care:        p.Care,
		Artist:      p.DisplayArtist(),
		Year:        p.DisplayYear(),
	}
}

// CartLineResponse is one cart line as rendered in the drawer
type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// CartResponse is the cart with totals and drawer state
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	IsOpen     bool               `json:"is_open"`
	TotalItems int                `json:"total_items"`
	TotalPrice string             `json:"total_price"`
}

func newCartResponse(state cart.State) CartResponse {
	resp := CartResponse{
		Lines:      make([]CartLineResponse, 0, len(state.Lines)),
		IsOpen:     state.IsOpen,
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice.StringFixed(2),
	}
	for _, line := range state.Lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Image:     line.Product.Image,
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price.StringFixed(2),
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return resp
}
