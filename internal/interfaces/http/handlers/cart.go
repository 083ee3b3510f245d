// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/domain/cart"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/logicbyfred/gallery-store/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

// SheetGenerator renders a printable cart
type SheetGenerator interface {
	GenerateSelectionSheet(state cart.State) (*bytes.Buffer, error)
}

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	sheets      SheetGenerator
	logger      *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, sheets SheetGenerator, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		sheets:      sheets,
		logger:      logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	state, err := h.cartService.GetCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, err, "Failed to retrieve cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    newCartResponse(state),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	count, err := h.cartService.GetItemCount(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, err, "Failed to get cart count")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.cartService.AddItem(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		h.fail(c, err, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    newCartResponse(state),
	})
}

// UpdateCartItem handles PUT /cart/items/:product_id?size=&color=
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	key, ok := lineKey(c)
	if !ok {
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.cartService.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), key, *req.Quantity)
	if err != nil {
		h.fail(c, err, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    newCartResponse(state),
	})
}

// RemoveFromCart handles DELETE /cart/items/:product_id?size=&color=
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	key, ok := lineKey(c)
	if !ok {
		return
	}

	state, err := h.cartService.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), key)
	if err != nil {
		h.fail(c, err, "Failed to remove cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    newCartResponse(state),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	state, err := h.cartService.ClearCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, err, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    newCartResponse(state),
	})
}

// OpenCart handles POST /cart/open
func (h *CartHandler) OpenCart(c *gin.Context) {
	state, err := h.cartService.OpenCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, err, "Failed to open cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart drawer updated",
		"data":    newCartResponse(state),
	})
}

// CloseCart handles POST /cart/close
func (h *CartHandler) CloseCart(c *gin.Context) {
	state, err := h.cartService.CloseCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, err, "Failed to close cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart drawer updated",
		"data":    newCartResponse(state),
	})
}

// DownloadSummary handles GET /cart/summary.pdf
func (h *CartHandler) DownloadSummary(c *gin.Context) {
	state, err := h.cartService.GetCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, err, "Failed to retrieve cart")
		return
	}

	buf, err := h.sheets.GenerateSelectionSheet(state)
	if err != nil {
		if errors.Is(err, pdf.ErrEmptySelection) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		h.logger.WithError(err).Error("Failed to generate selection sheet")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate selection sheet",
		})
		return
	}

	filename := fmt.Sprintf("selection-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// lineKey reads the line identity from the path and query string
func lineKey(c *gin.Context) (cart.Key, bool) {
	key := cart.Key{
		ProductID: c.Param("product_id"),
		Size:      c.Query("size"),
		Color:     c.Query("color"),
	}
	if key.ProductID == "" || key.Size == "" || key.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "product_id, size and color are required",
		})
		return cart.Key{}, false
	}
	return key, true
}

// fail maps cart errors to responses
func (h *CartHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, cart.ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, cart.ErrSessionRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, cart.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cart is being updated, please retry",
		})
	default:
		h.logger.WithError(err).WithField("session_id", middleware.GetSessionID(c)).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": msg,
		})
	}
}
