package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	LogLevel       string
	MigrationsPath string
	DBMaxConns     int32
	DBConnTimeout  time.Duration

	// Remote record mirror
	MirrorBufferSize   int
	HouseholdGroupID   string
	HouseholdGroupName string

	// Acting user when a request carries no X-User-ID header
	DefaultUserID string
	Location      *time.Location

	ReceiptScanDelay time.Duration
	RateLimit        string // limiter formatted rate, e.g. "100-M"
	FrontendBaseURL  string
	PosthogAPIKey    string
	SeedDemoData     bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 4)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("MIRROR_BUFFER_SIZE", 256)
	viper.SetDefault("HOUSEHOLD_GROUP_ID", "household")
	viper.SetDefault("HOUSEHOLD_GROUP_NAME", "Household")
	viper.SetDefault("DEFAULT_USER_ID", "1")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("RECEIPT_SCAN_DELAY", "2s")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("SEED_DEMO_DATA", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Records will not be mirrored.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.MirrorBufferSize = viper.GetInt("MIRROR_BUFFER_SIZE")
	if cfg.MirrorBufferSize <= 0 {
		cfg.MirrorBufferSize = 256
		log.Printf("Warning: Invalid MIRROR_BUFFER_SIZE. Defaulting to %d.\n", cfg.MirrorBufferSize)
	}

	timezone := viper.GetString("TIMEZONE")
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", timezone, err)
	}
	cfg.Location = loc

	scanDelayStr := viper.GetString("RECEIPT_SCAN_DELAY")
	scanDelay, err := time.ParseDuration(scanDelayStr)
	if err != nil || scanDelay < 0 {
		scanDelay = 2 * time.Second
		log.Printf("Warning: Invalid value for RECEIPT_SCAN_DELAY ('%s'). Defaulting to %s.\n", scanDelayStr, scanDelay.String())
	}
	cfg.ReceiptScanDelay = scanDelay

	connTimeout, err := time.ParseDuration(viper.GetString("DB_CONNECT_TIMEOUT"))
	if err != nil || connTimeout <= 0 {
		connTimeout = 5 * time.Second
	}
	cfg.DBConnTimeout = connTimeout
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")

	cfg.DefaultUserID = strings.TrimSpace(viper.GetString("DEFAULT_USER_ID"))
	if cfg.DefaultUserID == "" {
		return nil, fmt.Errorf("DEFAULT_USER_ID must not be empty")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.HouseholdGroupID = viper.GetString("HOUSEHOLD_GROUP_ID")
	cfg.HouseholdGroupName = viper.GetString("HOUSEHOLD_GROUP_NAME")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.SeedDemoData = viper.GetBool("SEED_DEMO_DATA")

	return cfg, nil
}
