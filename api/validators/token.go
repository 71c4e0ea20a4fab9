package validators

import (
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid auth token")

const bearerScheme = "bearer"

// BearerToken extracts the token from an Authorization header value.
func BearerToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", ErrInvalidToken
	}
	if hasBearerScheme(token) {
		token = strings.TrimSpace(token[len(bearerScheme):])
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidToken
	}
	return token, nil
}

// hasBearerScheme matches "Bearer" alone or followed by whitespace.
func hasBearerScheme(value string) bool {
	n := len(bearerScheme)
	if len(value) < n || !strings.EqualFold(value[:n], bearerScheme) {
		return false
	}
	return len(value) == n || value[n] == ' ' || value[n] == '\t'
}
