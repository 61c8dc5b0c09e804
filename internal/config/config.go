package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	Environment        string
	RunMigrations      bool
	DefaultAuditUserID int64
	ContractTermDays   int
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Environment:        getEnv("APP_ENV", "development"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		DefaultAuditUserID: int64(getEnvInt("DEFAULT_AUDIT_USER_ID", 1)),
		ContractTermDays:   getEnvInt("CONTRACT_TERM_DAYS", 365),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
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

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DefaultAuditUserID <= 0 {
		return fmt.Errorf("DEFAULT_AUDIT_USER_ID must be positive")
	}
	if c.ContractTermDays <= 0 {
		return fmt.Errorf("CONTRACT_TERM_DAYS must be positive")
	}
	return nil
}
