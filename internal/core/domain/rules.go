package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	NameMinLen     = 3
	NameMaxLen     = 20
	PasswordMinLen = 8

	passwordSpecials = "@$!%*?&"
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s\-]+$`)
	imageURLRe = regexp.MustCompile(`(?i)^https?://.*\.(png|jpg|jpeg|gif|svg|webp)$`)
)

// IsValidName checks the length and character set of a display name.
func IsValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < NameMinLen || n > NameMaxLen {
		return false
	}
	return nameRe.MatchString(s)
}

// IsValidImageURL accepts http(s) URLs that end in a known image extension.
func IsValidImageURL(s string) bool {
	return imageURLRe.MatchString(s)
}

// IsStrongPassword requires a lowercase letter, an uppercase letter, a digit and one
// of @$!%*?&, at least PasswordMinLen long, with no characters outside that alphabet.
func IsStrongPassword(s string) bool {
	if len(s) < PasswordMinLen {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
