package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Database (optional - presets and usage logs are disabled without it)
	DatabaseURL string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string

	// CORS allowed origins, comma separated ("*" allows any)
	CORSOrigins []string

	// Generation defaults and limits
	DefaultTimeSignature string
	DefaultMeasures      int
	MaxMeasures          int
}

func Load() *Config {
	return &Config{
		Environment:          getEnv("ENVIRONMENT", "development"),
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		SentryDSN:            getEnv("SENTRY_DSN", ""),
		AuthMode:             getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
		CORSOrigins:          splitList(getEnv("CORS_ORIGINS", "*")),
		DefaultTimeSignature: getEnv("DEFAULT_TIME_SIGNATURE", "4/4"),
		DefaultMeasures:      getEnvInt("DEFAULT_MEASURES", 4),
		MaxMeasures:          getEnvInt("MAX_MEASURES", 64),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction returns true in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase returns true if a database URL is configured
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// DefaultGenerationConfig returns the settings a fresh exercise form starts with
func (c *Config) DefaultGenerationConfig() models.GenerationConfig {
	return models.GenerationConfig{
		TimeSignature: c.DefaultTimeSignature,
		NumMeasures:   c.DefaultMeasures,
		Treble:        models.VoiceRange{Center: "c/4", Above: 4, Below: 0},
		Bass:          models.VoiceRange{Center: "c/3", Above: 4, Below: 0},
		ShowTreble:    true,
		ShowBass:      true,
	}
}
