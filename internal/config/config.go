package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Database
	DatabaseURL string

	// Auth
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Allocation solver (external collaborator reached over HTTP)
	SolverURL     string
	SolverTimeout time.Duration

	// Solver health probe
	SolverHealthEnabled  bool
	SolverHealthSchedule string // Cron expression (e.g., "*/15 * * * *")
}

func Load() *Config {
	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/diversification?sslmode=disable"),

		// Auth
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		// Allocation solver
		SolverURL:     getEnv("SOLVER_URL", "http://localhost:8000"),
		SolverTimeout: getDurationEnv("SOLVER_TIMEOUT", 30*time.Second),

		// Solver health probe
		SolverHealthEnabled:  getBoolEnv("SOLVER_HEALTH_ENABLED", true),
		SolverHealthSchedule: getEnv("SOLVER_HEALTH_SCHEDULE", "*/15 * * * *"), // Default: every 15 minutes
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
