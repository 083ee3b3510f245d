// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/domain/contact"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

// ContactHandler handles the studio contact form
type ContactHandler struct {
	contactService *contact.Service
	logger         *logrus.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), &req, contact.Meta{
		SessionID: middleware.GetSessionID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		if errors.Is(err, contact.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		h.logger.WithError(err).Error("Failed to submit contact message")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send message",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data": gin.H{
			"id":         msg.ID,
			"created_at": msg.CreatedAt,
		},
	})
}
