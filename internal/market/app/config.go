package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Identity provider settings. JWKSURL is required; tokens are verified
	// against the keys it publishes.
	JWKSURL  string
	Issuer   string
	Audience []string

	DatabaseFile string // Path to SQLite database file (default: ./motodrive.db)

	AppBaseURL     string   // Public frontend URL used in invite links
	AdminEmails    []string // Emails always elevated to admin on sign-in
	BootstrapToken string   // Optional: required to perform bootstrap

	// BookingStrictTransitions makes admin status updates honour the full
	// transition table instead of only enum membership.
	BookingStrictTransitions bool

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-invite sweep interval (default: 1h)
}

// LoadConfig reads configuration from the environment, with a best-effort
// .env load first for local development.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		JWKSURL:                  os.Getenv("IDP_JWKS_URL"),
		Issuer:                   os.Getenv("IDP_ISSUER"),
		Audience:                 splitList(os.Getenv("IDP_AUDIENCE")),
		DatabaseFile:             getEnvOrDefault("DATABASE_FILE", "motodrive.db"),
		AppBaseURL:               getEnvOrDefault("APP_BASE_URL", "http://localhost:3000"),
		AdminEmails:              splitList(os.Getenv("ADMIN_EMAILS")),
		BootstrapToken:           os.Getenv("BOOTSTRAP_TOKEN"),
		BookingStrictTransitions: getEnvBoolOrDefault("BOOKING_STRICT_TRANSITIONS", false),
		Env:                      getEnvOrDefault("ENV", "dev"),
		LogLevel:                 getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:                getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                     getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:      getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:     getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.JWKSURL == "" {
		return Config{}, fmt.Errorf("IDP_JWKS_URL is required")
	}
	if cfg.Issuer == "" {
		return Config{}, fmt.Errorf("IDP_ISSUER is required")
	}

	return cfg, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
