package validators

import (
	"strings"
	"unicode"
)

// MaxQueryValueLen bounds free-text query values such as search terms.
const MaxQueryValueLen = 255

// SanitizeString trims the input, drops control characters and cuts it to
// maxLen runes (0 means no limit). Truncation never splits a character.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(input))
	cleaned = strings.TrimSpace(cleaned)

	if maxLen > 0 {
		if runes := []rune(cleaned); len(runes) > maxLen {
			return strings.TrimSpace(string(runes[:maxLen]))
		}
	}
	return cleaned
}
