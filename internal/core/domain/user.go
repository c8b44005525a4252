package domain

import (
	"strings"
	"time"
	"unicode"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the only entity managed by the directory.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Image        string    `json:"image"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is the credential pair handed to a client after login or registration.
// It is never persisted server-side.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// NormalizeName upper-cases the first letter and lower-cases the rest.
// Applying it twice yields the same result as applying it once.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// NormalizeEmail trims and case-folds an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
