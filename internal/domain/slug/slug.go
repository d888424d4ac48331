// Package slug turns free text into URL-safe identifiers.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	thaiScript = regexp.MustCompile(`[\x{0E00}-\x{0E7F}]+`)
	separators = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize lower-cases text, drops Thai characters and joins the remaining
// alphanumeric runs with single hyphens. The result may be empty.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = thaiScript.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Fallback synthesizes an identifier for text that normalizes to nothing.
// seq keeps identifiers distinct when several are produced at the same instant.
func Fallback(prefix string, now time.Time, seq int) string {
	prefix = Normalize(prefix)
	if prefix == "" {
		prefix = "item"
	}
	return fmt.Sprintf("%s-%d-%d", prefix, now.UnixMilli(), seq)
}

// Valid reports whether s is already in normalized form.
func Valid(s string) bool {
	return s != "" && Normalize(s) == s
}
