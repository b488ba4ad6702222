package util

import "strings"

func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// IsBlank reports whether s has nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
