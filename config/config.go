package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	StoreBackend     string // firebase or memory
	FirebaseCredPath string
	FirebaseDBURL    string
	DatabaseURL      string
	RedisURL         string
	JWTSecret        string
	SendGridAPIKey   string
	SendGridFrom     string
	AppName          string
	AppURL           string
}

var AppConfig *Config

func Load() {
	godotenv.Load() // Load .env file if present

	AppConfig = &Config{
		Port:             getEnv("PORT", "8080"),
		StoreBackend:     getEnv("STORE_BACKEND", "firebase"),
		FirebaseCredPath: getEnv("FIREBASE_CREDENTIALS", "firebase-credentials.json"),
		FirebaseDBURL:    getEnv("FIREBASE_DATABASE_URL", ""),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", "shopsync-dev-secret-change-me"),
		SendGridAPIKey:   getEnv("SENDGRID_API_KEY", ""),
		SendGridFrom:     getEnv("SENDGRID_FROM_EMAIL", "noreply@shopsync.app"),
		AppName:          getEnv("APP_NAME", "ShopSync"),
		AppURL:           getEnv("APP_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
