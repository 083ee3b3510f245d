package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "gallery-store"},
		JWT:      config.JWTConfig{Secret: "test-secret-that-is-long-enough-for-hs256", AccessTokenExpiry: 15 * time.Minute},
		Session:  config.SessionConfig{TTL: time.Hour},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	j := NewJWTManager(testConfig())

	token, err := j.GenerateAccessToken("fred@example.com")
	require.NoError(t, err)

	claims, err := j.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "fred@example.com", claims.Email)
	assert.Equal(t, "gallery-store", claims.Issuer)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	j := NewJWTManager(testConfig())

	token, sessionID, err := j.GenerateSessionToken()
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	got, err := j.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	j := NewJWTManager(testConfig())

	session, _, err := j.GenerateSessionToken()
	require.NoError(t, err)
	_, err = j.ValidateAccessToken(session)
	assert.Error(t, err)

	access, err := j.GenerateAccessToken("fred@example.com")
	require.NoError(t, err)
	_, err = j.ValidateSessionToken(access)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	j := NewJWTManager(testConfig())
	token, _, err := j.GenerateSessionToken()
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "a-completely-different-secret-of-enough-length"
	_, err = NewJWTManager(other).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	j := NewJWTManager(cfg)

	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		TokenType: TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "6f1c2c8e-3f55-4c3e-9d8f-0d1b2a3c4d5e",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := j.sign(claims)
	require.NoError(t, err)

	_, err = j.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	j := NewJWTManager(testConfig())

	_, err := j.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestAuthenticateAdmin(t *testing.T) {
	cfg := testConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte("Sk3tch-B00k!"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Admin = config.AdminConfig{Email: "fred@example.com", PasswordHash: string(hash)}
	p := NewPasswordManager(cfg)

	assert.NoError(t, p.AuthenticateAdmin("Fred@Example.com ", "Sk3tch-B00k!"))
	assert.ErrorIs(t, p.AuthenticateAdmin("fred@example.com", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, p.AuthenticateAdmin("someone@example.com", "Sk3tch-B00k!"), ErrInvalidCredentials)
}

func TestAuthenticateAdmin_NotConfigured(t *testing.T) {
	p := NewPasswordManager(testConfig())

	assert.ErrorIs(t, p.AuthenticateAdmin("", ""), ErrInvalidCredentials)
}

func TestHashPassword(t *testing.T) {
	p := NewPasswordManager(testConfig())

	hash, err := p.HashPassword("Sk3tch-B00k!")
	require.NoError(t, err)
	assert.NoError(t, p.VerifyPassword("Sk3tch-B00k!", hash))
	assert.Error(t, p.VerifyPassword("Sk3tch-B00k?", hash))
}

func TestValidatePassword(t *testing.T) {
	tests := map[string]bool{
		"Sk3tch-B00k!":  true,
		"short1!":       false,
		"nouppercase1!": false,
		"NOLOWERCASE1!": false,
		"NoNumbers!!x":  false,
		"NoSpecial123":  false,
		"Aaaa-bbb1!":    false,
		"MyPassword1!":  false,
	}

	for password, ok := range tests {
		err := ValidatePassword(password)
		if ok {
			assert.NoError(t, err, password)
		} else {
			assert.Error(t, err, password)
		}
	}
}
