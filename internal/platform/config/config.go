package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	SnapshotPath string
	IsProduction bool
	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M" for
	// 100 requests per minute per client IP.
	RateLimit string
	// CacheSize bounds the memoization caches of the derived-state services.
	CacheSize int
	// CORSAllowOrigins is a comma-separated list of origins the browser
	// client may call from.
	CORSAllowOrigins string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SNAPSHOT_PATH", "snapshot.json")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CACHE_SIZE", 5)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		SnapshotPath:     viper.GetString("SNAPSHOT_PATH"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		CacheSize:        viper.GetInt("CACHE_SIZE"),
		CORSAllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
	}

	if cfg.SnapshotPath == "" {
		log.Println("Warning: SNAPSHOT_PATH environment variable not set.")
	}

	return cfg, nil
}
