package config

import (
	"log/slog"
	"os"
	"time"
)

const devSecret = "dev-secret-change-in-production"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port      string
	Env       string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:      getenv("PORT", "5000"),
		Env:       getenv("ENV", "development"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getenv("MONGO_DB", "inkwell"),
		JWTSecret: getenv("JWT_SECRET", devSecret),
		TokenTTL:  time.Hour,
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
