package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret          = "a-very-secret-key-should-be-longer-and-random"
	defaultMatchPoolLimit     = 100
	defaultAutoAcceptPriority = 2
	defaultDiscrepancyWindow  = 30 * 24 * time.Hour
	defaultImportRateLimit    = "30-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	JWTSecret      string
	MigrationsPath string

	// Matching
	MatchPoolLimit        int // Per-side bound on the batch pools; 0 means unbounded
	AutoAcceptMaxPriority int // Auto-accept confirms suggestions at this priority or better

	// Reporting
	DiscrepancyWindow time.Duration

	// HTTP
	ImportRateLimit    string
	CORSAllowedOrigins []string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("MATCH_POOL_LIMIT", defaultMatchPoolLimit)
	v.SetDefault("AUTO_ACCEPT_MAX_PRIORITY", defaultAutoAcceptPriority)
	v.SetDefault("DISCREPANCY_WINDOW", "720h")
	v.SetDefault("IMPORT_RATE_LIMIT", defaultImportRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Values from .env are already in the environment, real environment variables win.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		ImportRateLimit: v.GetString("IMPORT_RATE_LIMIT"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.MatchPoolLimit = v.GetInt("MATCH_POOL_LIMIT")
	if cfg.MatchPoolLimit < 0 {
		log.Printf("Warning: Invalid value for MATCH_POOL_LIMIT (%d). Defaulting to %d.\n", cfg.MatchPoolLimit, defaultMatchPoolLimit)
		cfg.MatchPoolLimit = defaultMatchPoolLimit
	}

	cfg.AutoAcceptMaxPriority = v.GetInt("AUTO_ACCEPT_MAX_PRIORITY")
	if cfg.AutoAcceptMaxPriority < 1 || cfg.AutoAcceptMaxPriority > 5 {
		log.Printf("Warning: Invalid value for AUTO_ACCEPT_MAX_PRIORITY (%d). Defaulting to %d.\n", cfg.AutoAcceptMaxPriority, defaultAutoAcceptPriority)
		cfg.AutoAcceptMaxPriority = defaultAutoAcceptPriority
	}

	windowStr := v.GetString("DISCREPANCY_WINDOW")
	window, err := time.ParseDuration(windowStr)
	if err != nil || window <= 0 {
		window = defaultDiscrepancyWindow
		log.Printf("Warning: Invalid value for DISCREPANCY_WINDOW ('%s'). Defaulting to %s.\n", windowStr, window.String())
	}
	cfg.DiscrepancyWindow = window

	if cfg.ImportRateLimit == "" {
		cfg.ImportRateLimit = defaultImportRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
