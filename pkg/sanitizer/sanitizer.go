package sanitizer

import "strings"

// Apply runs the transforms over value in order.
func Apply(value string, transforms ...func(string) string) string {
	for _, t := range transforms {
		value = t(value)
	}
	return value
}

// Trim removes surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace folds runs of whitespace into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail lowercases and trims an email address. It deliberately does
// not touch plus-addressing or dots; the backend treats those as distinct
// accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
