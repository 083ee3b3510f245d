// internal/pkg/auth/password.go
package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/logicbyfred/gallery-store/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed admin login
var ErrInvalidCredentials = errors.New("invalid email or password")

// PasswordManager handles password operations
type PasswordManager struct {
	config *config.Config
}

// NewPasswordManager creates a new password manager
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	return &PasswordManager{
		config: cfg,
	}
}

// HashPassword hashes a password using bcrypt
func (p *PasswordManager) HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword verifies a password against its hash
func (p *PasswordManager) VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthenticateAdmin checks credentials against the configured admin account
func (p *PasswordManager) AuthenticateAdmin(email, password string) error {
	admin := p.config.Admin
	if admin.Email == "" || admin.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), admin.Email) {
		return ErrInvalidCredentials
	}
	if err := p.VerifyPassword(password, admin.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if len(password) > 72 {
		return fmt.Errorf("password must be no more than 72 characters long")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	if !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	if hasRepeats(password, 3) {
		return fmt.Errorf("password cannot contain more than 2 repeating characters")
	}

	lower := strings.ToLower(password)
	for _, common := range []string{"password", "123456", "admin", "qwerty", "letmein", "welcome", "gallery"} {
		if strings.Contains(lower, common) {
			return fmt.Errorf("password is too common and easily guessable")
		}
	}

	return nil
}

// hasRepeats reports whether any rune repeats n or more times in a row
func hasRepeats(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
