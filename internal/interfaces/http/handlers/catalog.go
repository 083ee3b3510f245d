// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CatalogHandler handles product endpoints
type CatalogHandler struct {
	catalog catalog.Store
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store catalog.Store, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: store,
		logger:  logger,
	}
}

// ProductRequest represents an admin product upsert
type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image" binding:"max=500"`
	Colors      []string        `json:"colors" binding:"required,min=1,dive,required"`
	Sizes       []string        `json:"sizes" binding:"required,min=1,dive,required"`
	Fabric      string          `json:"fabric"`
	Fit         string          `json:"fit"`
	Description string          `json:"description"`
	Care        []string        `json:"care"`
	Artist      string          `json:"artist"`
	Year        string          `json:"year" binding:"max=10"`
	SortOrder   int             `json:"sort_order"`
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	data := make([]ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, newProductResponse(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    data,
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	prod, err := h.catalog.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		h.logger.WithError(err).Error("Failed to get product")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    newProductResponse(prod),
	})
}

// UpsertProduct handles PUT /admin/products/:id
func (h *CatalogHandler) UpsertProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	prod := &catalog.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Price:       req.Price.Round(2),
		Image:       req.Image,
		Colors:      req.Colors,
		Sizes:       req.Sizes,
		Fabric:      req.Fabric,
		Fit:         req.Fit,
		Description: req.Description,
		Care:        req.Care,
		Artist:      req.Artist,
		Year:        req.Year,
		SortOrder:   req.SortOrder,
	}
	if err := prod.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product",
			"details": err.Error(),
		})
		return
	}

	if err := h.catalog.UpsertProduct(c.Request.Context(), prod); err != nil {
		h.logger.WithError(err).WithField("product_id", prod.ID).Error("Failed to save product")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save product",
		})
		return
	}

	admin, _ := middleware.GetAdminEmailFromContext(c)
	h.logger.WithFields(logrus.Fields{
		"product_id": prod.ID,
		"admin":      admin,
	}).Info("Product saved")

	c.JSON(http.StatusOK, gin.H{
		"message": "Product saved successfully",
		"data":    newProductResponse(prod),
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		h.logger.WithError(err).WithField("product_id", id).Error("Failed to delete product")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete product",
		})
		return
	}

	admin, _ := middleware.GetAdminEmailFromContext(c)
	h.logger.WithFields(logrus.Fields{
		"product_id": id,
		"admin":      admin,
	}).Info("Product deleted")

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
