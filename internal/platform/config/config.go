package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate limiting for the public API surface
	RateLimitRequests int64
	RateLimitWindow   time.Duration

	// Obligation worker cadence
	WorkerInterval   time.Duration
	WorkerRunAtStart bool

	// Product analytics; empty disables the posthog client
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")
	viper.SetDefault("WORKER_INTERVAL", "24h")
	viper.SetDefault("WORKER_RUN_AT_START", true)
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")
	if cfg.RateLimitRequests <= 0 {
		cfg.RateLimitRequests = 100
	}

	rateWindowStr := viper.GetString("RATE_LIMIT_WINDOW")
	rateWindow, err := time.ParseDuration(rateWindowStr)
	if err != nil {
		rateWindow = time.Minute
		if rateWindowStr != "" {
			log.Printf("Warning: Invalid value for RATE_LIMIT_WINDOW ('%s'). Defaulting to %s.\n", rateWindowStr, rateWindow.String())
		}
	}
	cfg.RateLimitWindow = rateWindow

	workerIntervalStr := viper.GetString("WORKER_INTERVAL")
	workerInterval, err := time.ParseDuration(workerIntervalStr)
	if err != nil {
		workerInterval = 24 * time.Hour
		if workerIntervalStr != "" {
			log.Printf("Warning: Invalid value for WORKER_INTERVAL ('%s'). Defaulting to %s.\n", workerIntervalStr, workerInterval.String())
		}
	}
	cfg.WorkerInterval = workerInterval
	cfg.WorkerRunAtStart = viper.GetBool("WORKER_RUN_AT_START")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
