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

	THANK_YOU_URL string
	LEAD_SOURCE   string

	GTM_ID      string
	FB_PIXEL_ID string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	THANK_YOU_URL = getEnv("THANK_YOU_URL", "/thank-you")
	LEAD_SOURCE = getEnv("LEAD_SOURCE", "landing")

	GTM_ID = getEnv("GTM_ID", "")
	FB_PIXEL_ID = getEnv("FB_PIXEL_ID", "")
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
