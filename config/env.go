// file: bintree/config/env.go
package config

import (
	"os"
	"strings"
)

// GetEnvStr returns string env var or fallback.
func GetEnvStr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvBool returns bool env var or fallback. Any other non-empty value
// counts as true, which matches the NO_COLOR convention.
func GetEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(os.Getenv(key))
	switch v {
	case "":
		return fallback
	case "0", "false", "no":
		return false
	}
	return true
}
