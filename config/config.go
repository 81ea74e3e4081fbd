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

	// WooCommerce provider. Optional at boot; checked per sync run.
	WOO_URL             string
	WOO_CONSUMER_KEY    string
	WOO_CONSUMER_SECRET string

	// External plans API provider. Optional at boot; checked per sync run.
	PLANS_API_URL   string
	PLANS_API_TOKEN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	WOO_URL = getEnv("WOO_URL", "")
	WOO_CONSUMER_KEY = getEnv("WOO_CONSUMER_KEY", "")
	WOO_CONSUMER_SECRET = getEnv("WOO_CONSUMER_SECRET", "")

	PLANS_API_URL = getEnv("PLANS_API_URL", "")
	PLANS_API_TOKEN = getEnv("PLANS_API_TOKEN", "")
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
