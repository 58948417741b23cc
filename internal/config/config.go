// Package config reads environment configuration with fallbacks.
package config

import (
	"os"
	"strings"
)

// Get returns the environment value for key, or fallback when unset or
// blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
