package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting. It is constructed once
// in main and passed to the components that need it; nothing below the
// HTTP surface reads the environment directly.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	ServerPort string
	LogLevel   string

	JWTSecret string
	JWTTTL    time.Duration

	// Token-bucket settings for the API rate limiter.
	RateLimit int
	RateBurst int
}

// Load reads the configuration from the environment. A .env file is
// loaded first when present, so local runs behave like docker-compose.
func Load() (*Config, error) {
	// Ignore the error: in containers the environment is provided directly.
	_ = godotenv.Load()

	cfg := &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getEnv("POSTGRES_DB", "lycosidae"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTTTL:           24 * time.Hour,
		RateLimit:        10000,
		RateBurst:        1500,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresDB, c.PostgresPassword)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
