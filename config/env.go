package config

import (
	"os"
)

// Environment selects the runtime profile. It drives the gin mode and
// the zap logger flavor in cmd/api.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment reads the ENV variable; anything unrecognized falls
// back to development.
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}

// IsTest returns true if the current environment is test
func IsTest() bool {
	return GetEnvironment() == Test
}
