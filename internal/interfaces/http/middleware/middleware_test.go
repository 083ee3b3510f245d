package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/pkg/auth"
	"github.com/logicbyfred/gallery-store/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "Gallery Store"},
		Session: config.SessionConfig{CookieName: "session_id", TTL: time.Hour},
		JWT: config.JWTConfig{
			Secret:            strings.Repeat("m", 32),
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{
			RateLimitPerMinute: 2,
			CORSAllowedOrigins: []string{"https://gallery.example", "*.studio.example"},
			CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		},
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	inbound := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, inbound)
	assert.Equal(t, inbound, serve(r, req).Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	assert.NotEqual(t, "<script>", serve(r, req).Header().Get(RequestIDHeader))
}

func TestSession(t *testing.T) {
	cfg := testConfig()
	jwtManager := auth.NewJWTManager(cfg)

	r := gin.New()
	r.Use(Session(cfg, jwtManager, logger.Discard()))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})

	t.Run("issues a session to new visitors", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

		sid, err := jwtManager.ValidateSessionToken(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, sid, w.Body.String())
	})

	t.Run("keeps a valid session", func(t *testing.T) {
		token, sid, err := jwtManager.GenerateSessionToken()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: token})
		w := serve(r, req)

		assert.Equal(t, sid, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("replaces a tampered session", func(t *testing.T) {
		token, sid, err := jwtManager.GenerateSessionToken()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: token + "x"})
		w := serve(r, req)

		assert.NotEqual(t, sid, w.Body.String())
		assert.Len(t, w.Result().Cookies(), 1)
	})

	t.Run("rejects admin tokens as sessions", func(t *testing.T) {
		token, err := jwtManager.GenerateAccessToken("studio@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: token})
		w := serve(r, req)

		_, err = uuid.Parse(w.Body.String())
		assert.NoError(t, err)
		assert.Len(t, w.Result().Cookies(), 1)
	})
}

func TestAdminAuth(t *testing.T) {
	cfg := testConfig()
	jwtManager := auth.NewJWTManager(cfg)

	r := gin.New()
	r.GET("/admin", AdminAuth(jwtManager), func(c *gin.Context) {
		email, _ := GetAdminEmailFromContext(c)
		c.String(http.StatusOK, email)
	})

	access, err := jwtManager.GenerateAccessToken("studio@example.com")
	require.NoError(t, err)
	session, _, err := jwtManager.GenerateSessionToken()
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"session token", "Bearer " + session, http.StatusUnauthorized},
		{"admin token", "Bearer " + access, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "studio@example.com", w.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(testConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://gallery.example", true},
		{"https://shop.studio.example", true},
		{"https://studio.example", false},
		{"https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := serve(r, req)

			if tt.allowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://gallery.example")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestSecurityHeadersAndSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders(), RequestSizeLimit(16))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	r := gin.New()
	r.Use(RateLimit(testConfig(), client, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	w = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	r := gin.New()
	r.Use(RateLimit(testConfig(), client, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusGatewayTimeout, serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)).Code)
}

func TestLogger(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	r := gin.New()
	r.Use(RequestID(), Logger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(context.DeadlineExceeded)
		c.Status(http.StatusInternalServerError)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/ok", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.NotEmpty(t, entry.Data["request_id"])

	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	serve(r, httptest.NewRequest(http.MethodGet, "/broken", nil))
	entry = hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Data["error"], "deadline exceeded")
}
