package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-level settings. Everything is optional; the zero
// configuration runs a plain interactive session.
type Config struct {
	MetricsPort    string // empty disables the metrics endpoint
	ListingIDStart int64  // first listing ID the store issues
	Prompt         string // shown only when stdin is a terminal
}

// Load reads configuration from the environment, preferring an optional
// .env file for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on environment variables")
	}

	idStartStr := getEnv("LISTING_ID_START", "100001")
	idStart, err := strconv.ParseInt(idStartStr, 10, 64)
	if err != nil || idStart <= 0 {
		log.Printf("Warning: invalid LISTING_ID_START value %q, defaulting to 100001", idStartStr)
		idStart = 100001
	}

	cfg := &Config{
		MetricsPort:    getEnv("METRICS_PORT", ""),
		ListingIDStart: idStart,
		Prompt:         getEnv("CLI_PROMPT", "# "),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
