// internal/interfaces/http/handlers/viewmode.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/domain/viewmode"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

// ViewModeHandler handles the 3D/2D view endpoints of a product page
type ViewModeHandler struct {
	viewService *viewmode.Service
	logger      *logrus.Logger
}

// NewViewModeHandler creates a new view mode handler
func NewViewModeHandler(viewService *viewmode.Service, logger *logrus.Logger) *ViewModeHandler {
	return &ViewModeHandler{
		viewService: viewService,
		logger:      logger,
	}
}

// PreferenceRequest represents a view toggle
type PreferenceRequest struct {
	Preference string `json:"preference" binding:"required"`
}

// GetView handles GET /products/:id/view
func (h *ViewModeHandler) GetView(c *gin.Context) {
	d, err := h.viewService.Get(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	h.respond(c, d, err)
}

// ReportCapability handles POST /products/:id/view/capability
func (h *ViewModeHandler) ReportCapability(c *gin.Context) {
	var report viewmode.ClientReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	d, err := h.viewService.ReportProbe(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"), report)
	h.respond(c, d, err)
}

// SetPreference handles PUT /products/:id/view/preference
func (h *ViewModeHandler) SetPreference(c *gin.Context) {
	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	pref, err := viewmode.ParsePreference(req.Preference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	d, err := h.viewService.SetPreference(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"), pref)
	h.respond(c, d, err)
}

// ReportFailure handles POST /products/:id/view/failure
func (h *ViewModeHandler) ReportFailure(c *gin.Context) {
	d, err := h.viewService.ReportRuntimeFailure(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	h.respond(c, d, err)
}

func (h *ViewModeHandler) respond(c *gin.Context, d viewmode.Decision, err error) {
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, viewmode.ErrSessionRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, viewmode.ErrConcurrentUpdate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "View state is being updated, please retry",
			})
		default:
			h.logger.WithError(err).WithField("product_id", c.Param("id")).Error("Failed to resolve view mode")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve view mode",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "View mode resolved",
		"data":    d,
	})
}
