package validation

import (
	"regexp"
	"strings"
)

// PasswordMinLength is the floor for account passwords; the request DTOs
// carry the same value in their binding tags
const PasswordMinLength = 6

// EmailPattern matches syntactically plausible email addresses
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return EmailPattern.MatchString(strings.TrimSpace(value))
}

// IsBlank reports whether the value is empty after trimming
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// NormalizeEmail lowercases and trims an address so equality checks and
// unique constraints treat case variants as the same address
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
