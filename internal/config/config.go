package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration values.
type Config struct {
	AppPort           string
	JWTSecret         string
	TokenExpires      time.Duration
	AuthLatency       time.Duration
	TaxRate           decimal.Decimal
	TelegramBotToken  string
	TelegramAdminChat string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "c1ea4d7f0e2b9a6381d5f4c7b2e90a3d6f8b1c4e7a0d3f6b9c2e5a8d1f4b7c0e"),
		TokenExpires:      getEnvInt("JWT_TTL_HOURS", 24) * time.Hour,
		AuthLatency:       getEnvInt("AUTH_LATENCY_MS", 1000) * time.Millisecond,
		TaxRate:           getEnvDecimal("TAX_RATE", "0.10"),
		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChat: getEnv("TELEGRAM_ADMIN_CHAT_ID", ""),
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			return time.Duration(parsed)
		}
		log.Printf("[Config] ignoring invalid %s=%q", key, value)
	}
	return time.Duration(fallback)
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := decimal.NewFromString(value); err == nil && !parsed.IsNegative() {
			return parsed
		}
		log.Printf("[Config] ignoring invalid %s=%q", key, value)
	}
	return decimal.RequireFromString(fallback)
}
