// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

const SessionIDKey = "session_id"

// Session resolves the visitor's anonymous session from a signed cookie,
// issuing a fresh one when the cookie is missing, tampered with or expired
func Session(cfg *config.Config, jwtManager *auth.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(cfg.Session.CookieName); err == nil && token != "" {
			sessionID, err := jwtManager.ValidateSessionToken(token)
			if err == nil {
				c.Set(SessionIDKey, sessionID)
				c.Next()
				return
			}
			logger.WithError(err).Debug("Replacing invalid session cookie")
		}

		token, sessionID, err := jwtManager.GenerateSessionToken()
		if err != nil {
			logger.WithError(err).Error("Failed to issue session token")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start session",
			})
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Session.CookieName, token, int(cfg.Session.TTL.Seconds()), "/", "", cfg.Session.SecureCookie, true)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the session id from gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
