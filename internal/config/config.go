// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aftab0khan021/mgnrega/internal/utils"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config holds application configuration
type Config struct {
	DataDir        string // Directory for the SQLite database file (always absolute)
	StorageBackend string // "sqlite" or "mongo"
	MongoURL       string
	DBName         string // Mongo database name, also the SQLite file stem
	LogLevel       string
	Port           int
	DevMode        bool
	CORSOrigins    []string
	Seed           SeedConfig
	// TranslationsFile overrides the embedded translation table when set
	TranslationsFile    string
	MaintenanceSchedule string // cron spec for background store checks
}

// SeedConfig controls the synthetic dataset
type SeedConfig struct {
	OnStartup   bool
	AnchorYear  int // Most recent year in the generated window
	AnchorMonth int // Most recent month (1-12) in the generated window
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir, err := filepath.Abs(getEnv("DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	cfg := &Config{
		DataDir:        dataDir,
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "mgnrega"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnvAsInt("PORT", 8001),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		CORSOrigins:    utils.ParseCSV(getEnv("CORS_ORIGINS", "*")),
		Seed: SeedConfig{
			OnStartup:   getEnvAsBool("SEED_ON_STARTUP", true),
			AnchorYear:  getEnvAsInt("SEED_ANCHOR_YEAR", 2025),
			AnchorMonth: getEnvAsInt("SEED_ANCHOR_MONTH", 10),
		},
		TranslationsFile:    getEnv("TRANSLATIONS_FILE", ""),
		MaintenanceSchedule: getEnv("MAINTENANCE_SCHEDULE", "@every 1h"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.StorageBackend == BackendSQLite {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite:
	case BackendMongo:
		if c.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required when STORAGE_BACKEND=%s", BackendMongo)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want %s or %s)", c.StorageBackend, BackendSQLite, BackendMongo)
	}

	if c.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	if c.Seed.AnchorMonth < 1 || c.Seed.AnchorMonth > 12 {
		return fmt.Errorf("SEED_ANCHOR_MONTH %d out of range 1-12", c.Seed.AnchorMonth)
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	return nil
}

// SQLitePath returns the database file used by the sqlite backend
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, c.DBName+".db")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
