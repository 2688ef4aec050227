package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration, loaded from environment
// variables (main loads a .env file first, so both work).
type Config struct {
	HTTPAddr      string        // listen address for the API server
	DSN           string        // MySQL DSN; empty means the database package default
	JWTSecret     string        // HS256 signing secret for login tokens
	GeminiAPIKey  string        // empty disables AI reports (fallback text is served)
	ReportModel   string        // Gemini model used for driver reports
	ReportTimeout time.Duration // upper bound on a single report call
	ResetKeyTTL   time.Duration // lifetime of a password-reset key
}

// Load reads configuration from the environment with development defaults.
func Load() *Config {
	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DSN:           getEnv("DB_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		ReportModel:   getEnv("REPORT_MODEL", "gemini-1.5-flash"),
		ReportTimeout: getEnvDuration("REPORT_TIMEOUT_SECONDS", 15*time.Second),
		ResetKeyTTL:   getEnvDuration("RESET_KEY_TTL_SECONDS", 15*time.Minute),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		secs, err := strconv.Atoi(value)
		if err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}

// String masks secrets so the config can be logged at startup.
func (c *Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, Gemini: %v, ReportModel: %s}",
		c.HTTPAddr, c.GeminiAPIKey != "", c.ReportModel)
}
