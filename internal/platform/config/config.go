package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	Environment      string
	JWTSecret        string
	JWTTTL           time.Duration
	DemoPassword     string
	SupabaseDBURL    string
	SupabaseRoleKey  string
	MaxBodyBytes     int64
	ShutdownTimeout  time.Duration
	CalendarDefaults bool
}

// Load reads configuration from the environment, after best-effort loading a
// local .env file. Missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		Environment:     getEnv("APP_ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTTTL:          getEnvDuration("JWT_TTL", 12*time.Hour),
		DemoPassword:    getEnv("DEMO_PASSWORD", "password123"),
		SupabaseDBURL:   getEnv("SUPABASE_DB_URL", ""),
		SupabaseRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		MaxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate covers the API server. The seeder has its own stricter check.
func (c Config) Validate() error {
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

// ValidateSeed enforces the env the seeder cannot run without.
func (c Config) ValidateSeed() error {
	if strings.TrimSpace(c.SupabaseDBURL) == "" {
		return fmt.Errorf("SUPABASE_DB_URL is required")
	}
	if strings.TrimSpace(c.SupabaseRoleKey) == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	return nil
}
