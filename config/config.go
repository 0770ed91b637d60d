package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	MINIO_ENDPOINT   string
	MINIO_ACCESS_KEY string
	MINIO_SECRET_KEY string
	MINIO_BUCKET     string
	MINIO_USE_SSL    bool
	MINIO_PUBLIC_URL string

	REDIS_URL string

	ADMIN_USERNAME      string
	ADMIN_PASSWORD_HASH string
)

// LoadEnv reads configuration from the environment. DB_URL is deliberately
// optional: without it the read API serves the built-in sample collection.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = getEnv("DB_URL", "")
	JWT_SECRET = mustEnv("JWT_SECRET")

	MINIO_ENDPOINT = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MINIO_ACCESS_KEY = getEnv("MINIO_ACCESS_KEY", "")
	MINIO_SECRET_KEY = getEnv("MINIO_SECRET_KEY", "")
	MINIO_BUCKET = getEnv("MINIO_BUCKET", "artworks")
	MINIO_USE_SSL = getEnv("MINIO_USE_SSL", "false") == "true"
	MINIO_PUBLIC_URL = getEnv("MINIO_PUBLIC_URL", "")

	REDIS_URL = getEnv("REDIS_URL", "")

	ADMIN_USERNAME = mustEnv("ADMIN_USERNAME")
	ADMIN_PASSWORD_HASH = mustEnv("ADMIN_PASSWORD_HASH")
}

// StoreConfigured reports whether remote store credentials are present.
// Evaluated from the environment loaded once at startup.
func StoreConfigured() bool {
	return DB_URL != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
