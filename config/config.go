package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret      string
	JWTExpiryHours int

	AllowedOrigins []string

	// ReservationURL is the external workflow that decides slot availability.
	ReservationURL     string
	ReservationTimeout time.Duration

	AverageServicePrice   float64
	LoyaltyPointsPerVisit int
	Timezone              string

	StatsRefreshSchedule string
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL:   os.Getenv("DB_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")),

		ReservationURL:     getEnv("RESERVATION_WEBHOOK_URL", "https://ohjdojjcbsj.app.n8n.cloud/webhook/smartsalonscheduler"),
		ReservationTimeout: getEnvAsDuration("RESERVATION_TIMEOUT", 0),

		AverageServicePrice:   getEnvAsFloat("AVERAGE_SERVICE_PRICE", 85),
		LoyaltyPointsPerVisit: getEnvAsInt("LOYALTY_POINTS_PER_VISIT", 10),
		Timezone:              getEnv("APP_TIMEZONE", "Asia/Kolkata"),

		StatsRefreshSchedule: getEnv("STATS_REFRESH_SCHEDULE", "@every 5m"),
	}
}

// EnsureJWTSecret fills an empty JWT secret with a random one outside
// production. Sessions signed with it do not survive a restart.
func (c *Config) EnsureJWTSecret() error {
	if c.JWTSecret != "" {
		return nil
	}
	if c.Env == "production" {
		return errors.New("JWT_SECRET not set")
	}
	secret, err := utils.GenerateJWTSecret()
	if err != nil {
		return fmt.Errorf("generate JWT secret: %w", err)
	}
	c.JWTSecret = secret
	slog.Warn("JWT_SECRET not set, using a generated development secret", "env", c.Env)
	return nil
}

// TokenTTL returns the session lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
