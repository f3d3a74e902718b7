package config

import (
	"os"
	"strings"
)

type Config struct {
	DatabaseURL    string
	UploadDir      string
	Port           string
	AllowedOrigins []string
}

// Load reads configuration from environment variables, falling back to
// local-development defaults.
func Load() Config {
	return Config{
		DatabaseURL:    getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobservice port=5432 sslmode=disable"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ","),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
