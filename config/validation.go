package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is internally consistent.
func ValidateConfig(cfg *Config) error {
	var errors []string

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
			errors = append(errors, "postgres driver requires DB_HOST, DB_PORT and DB_NAME")
		}
	case "sqlite":
		if cfg.DBPath == "" {
			errors = append(errors, "sqlite driver requires DB_PATH")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver))
	}

	if cfg.ClusterCount < 1 {
		errors = append(errors, "CLUSTER_COUNT must be at least 1")
	}
	if cfg.MinSupport <= 0 || cfg.MinSupport > 1 {
		errors = append(errors, "MIN_SUPPORT must be in (0, 1]")
	}
	if cfg.MinConfidence <= 0 || cfg.MinConfidence > 1 {
		errors = append(errors, "MIN_CONFIDENCE must be in (0, 1]")
	}
	if cfg.CacheTTL < 0 {
		errors = append(errors, "CACHE_TTL_SECONDS must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return nil
}
