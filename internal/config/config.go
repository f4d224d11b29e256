// README: Config loader with env defaults for HTTP, session backend, archive, and model settings.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PlannerConfig struct {
	DefaultProvider string
	DefaultModel    string
	Temperature     float64
	MaxTokens       int
	OutputDir       string
	SaveItineraries bool
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when empty the itinerary archive keeps no database copy.
		DSN string
	}
	Redis struct {
		// Addr is optional; when empty sessions live in process memory.
		Addr string
	}
	Planner PlannerConfig
	Maps    struct {
		APIKey string
	}
}

func Load() (Config, error) {
	// Best-effort .env load; absence is fine in containerized deployments.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ROAM_HTTP_ADDR", ":8000")
	cfg.DB.DSN = os.Getenv("ROAM_DB_DSN")
	cfg.Redis.Addr = os.Getenv("ROAM_REDIS_ADDR")
	cfg.Planner.DefaultProvider = envOrDefault("DEFAULT_PROVIDER", "cerebras")
	cfg.Planner.DefaultModel = envOrDefault("DEFAULT_MODEL", "llama-3.3-70b")
	cfg.Planner.Temperature = envOrDefaultFloat("MODEL_TEMPERATURE", 0.7)
	cfg.Planner.MaxTokens = envOrDefaultInt("MODEL_MAX_TOKENS", 2048)
	cfg.Planner.OutputDir = envOrDefault("ITINERARY_OUTPUT_DIR", "./itineraries")
	cfg.Planner.SaveItineraries = envOrDefaultBool("SAVE_ITINERARIES", true)
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
