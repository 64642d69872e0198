// Package pagination provides offset-based pagination helpers shared by the
// public and admin article listings.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page
	MaxLimit     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables
// (PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_LIMIT, PAGINATION_MAX_LIMIT),
// falling back to defaults for anything unset.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", 10),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 100),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
