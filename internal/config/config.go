package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration
	DatabaseURL string

	// Redis configuration
	RedisURL string

	// Admin API configuration
	AdminAPIKey string

	// Brevo email configuration
	BrevoAPIKey    string
	BrevoFromEmail string
	BrevoFromName  string

	// Cache configuration
	StatsCacheTTLSeconds   int
	PurchaseLockTTLSeconds int
	ServiceName            string
}

var AppConfig *Config

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:                   getEnv("PORT", "8080"),
		Mode:                   getEnv("GIN_MODE", "debug"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		RedisURL:               getEnv("REDIS_URL", "redis://localhost:6379/0"),
		AdminAPIKey:            getEnv("ADMIN_API_KEY", "admin-api-key"),
		BrevoAPIKey:            getEnv("BREVO_API_KEY", ""),
		BrevoFromEmail:         getEnv("BREVO_FROM_EMAIL", ""),
		BrevoFromName:          getEnv("BREVO_FROM_NAME", "Subscription Service"),
		StatsCacheTTLSeconds:   getEnvInt("STATS_CACHE_TTL_SECONDS", 60),
		PurchaseLockTTLSeconds: getEnvInt("PURCHASE_LOCK_TTL_SECONDS", 10),
		ServiceName:            getEnv("SERVICE_NAME", "Subscription Service"),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
