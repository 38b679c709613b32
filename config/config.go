package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every secret comes from the
// environment; nothing is embedded in source.
type Config struct {
	SupabaseURL string
	SupabaseKey string

	GenerationAPIKey  string
	GenerationBaseURL string
	GenerationModel   string

	ListenAddr string
	LogLevel   string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() (*Config, error) {
	// Missing .env is fine; deployed environments set real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_SERVICE_KEY"),
		GenerationAPIKey:  os.Getenv("GENERATION_API_KEY"),
		GenerationBaseURL: os.Getenv("GENERATION_API_BASE_URL"),
		GenerationModel:   getEnvOrDefault("GENERATION_MODEL", "gpt-4o-mini"),
		ListenAddr:        getEnvOrDefault("LISTEN_ADDR", ":8080"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = os.Getenv("SUPABASE_ANON_KEY")
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY or SUPABASE_ANON_KEY is required")
	}
	if cfg.GenerationAPIKey == "" {
		return nil, fmt.Errorf("GENERATION_API_KEY is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
