// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/middleware"
	"github.com/logicbyfred/gallery-store/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles administrator authentication
type AuthHandler struct {
	passwords *auth.PasswordManager
	tokens    *auth.JWTManager
	config    *config.Config
	logger    *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config, tokens *auth.JWTManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		passwords: auth.NewPasswordManager(cfg),
		tokens:    tokens,
		config:    cfg,
		logger:    logger,
	}
}

// LoginRequest represents an administrator login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.passwords.AuthenticateAdmin(req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.WithField("client_ip", c.ClientIP()).Warn("Failed admin login attempt")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		h.logger.WithError(err).Error("Admin authentication failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Login failed",
		})
		return
	}

	token, err := h.tokens.GenerateAccessToken(h.config.Admin.Email)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate access token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Login failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int64(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}

// Me handles GET /admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetAdminEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Admin not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin retrieved successfully",
		"data": gin.H{
			"email": email,
		},
	})
}
