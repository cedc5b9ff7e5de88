package forecast

import (
	"strings"
	"unicode"
)

// NormalizeCity lowercases the name, treats punctuation as space and collapses whitespace.
func NormalizeCity(city string) string {
	lowered := strings.ToLower(strings.TrimSpace(city))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}
