package services

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Sanitize strips HTML tags from free-text input and trims whitespace, so
// user-supplied text cannot inject markup into outgoing emails.
func Sanitize(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return len(s) < 256 && emailPattern.MatchString(s)
}
