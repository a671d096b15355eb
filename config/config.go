package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file path

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Data files
	RecipesPath      string
	InteractionsPath string

	// Engine tuning
	ClusterCount  int
	MinSupport    float64
	MinConfidence float64
	CacheTTL      time.Duration
}

// LoadConfig creates a new Config instance from environment variables,
// reading a .env file first when one is present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ServerHost:       getEnv("SERVER_HOST", "0.0.0.0"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           getEnv("DB_NAME", "monngon"),
		DBSSLMode:        getEnv("DB_SSL_MODE", "disable"),
		DBPath:           getEnv("DB_PATH", "monngon.db"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisURL:         os.Getenv("REDIS_URL"),
		RecipesPath:      getEnv("RECIPES_PATH", "data/RAW_recipes.csv"),
		InteractionsPath: getEnv("INTERACTIONS_PATH", "data/RAW_interactions.csv"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.ClusterCount, err = getEnvInt("CLUSTER_COUNT", 5); err != nil {
		return nil, err
	}
	if cfg.MinSupport, err = getEnvFloat("MIN_SUPPORT", 0.005); err != nil {
		return nil, err
	}
	if cfg.MinConfidence, err = getEnvFloat("MIN_CONFIDENCE", 0.1); err != nil {
		return nil, err
	}
	ttlSeconds, err := getEnvInt("CACHE_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttlSeconds) * time.Second

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
