package config

import "os"

// Config holds all application configuration
type Config struct {
	// DatabaseURL is the Postgres connection string. When empty the server
	// runs on the in-memory store with the default roster.
	DatabaseURL string
	Port        string
	StaticDir   string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		StaticDir:   getEnv("STATIC_DIR", "web/static"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
