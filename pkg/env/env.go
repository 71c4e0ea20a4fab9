package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of the given environment variable, or
// fallback when it is unset or blank.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		if val = strings.TrimSpace(val); val != "" {
			return val
		}
	}
	return fallback
}
