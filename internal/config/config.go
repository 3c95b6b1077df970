package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string
	DatabaseDSN       string
	JWTSecret         string
	SupabaseJWTSecret string // optional second verification key for Supabase-issued tokens
	TokenExpiryMin    int
	CORSOrigins       string
	Environment       string // development / staging / production
	RateLimitPerMin   int
	LoginLimitPerMin  int
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=pureborn port=5432 sslmode=disable"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),
		TokenExpiryMin:    getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		CORSOrigins:       getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		LoginLimitPerMin:  getEnvInt("LOGIN_LIMIT_PER_MINUTE", 5),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	switch cfg.Environment {
	case "development", "staging", "production":
	default:
		log.Fatalf("[FATAL] ENVIRONMENT must be development, staging or production, got %q", cfg.Environment)
	}
	if cfg.Environment == "production" {
		if cfg.CORSOrigins == "*" {
			log.Fatal("[FATAL] CORS_ALLOWED_ORIGINS cannot be '*' in production")
		}
		if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=pureborn port=5432 sslmode=disable" {
			log.Println("[WARN] DATABASE_DSN is still the development default")
		}
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[WARN] %s=%q is not a positive integer, using %d", key, v, def)
		return def
	}
	return n
}
