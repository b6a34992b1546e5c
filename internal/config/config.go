package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	Addr    string
	DataDir string
	// DatabaseURL selects the SQLite-backed store when set; otherwise
	// collections are kept as JSON files under DataDir.
	DatabaseURL string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	DefaultLatitude    float64
	DefaultLongitude   float64

	// CheckInterval is how often the notification check pass runs.
	CheckInterval time.Duration

	TelegramToken  string
	TelegramChatID int64

	// ModelServiceURL points at the plant/soil prediction service. Empty
	// disables the analysis endpoints.
	ModelServiceURL string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file is honored when present.
func Load() (Config, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		Addr:               strings.TrimSpace(os.Getenv("ADDR")),
		DataDir:            strings.TrimSpace(os.Getenv("DATA_DIR")),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		OpenWeatherAPIKey:  strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")),
		OpenWeatherBaseURL: strings.TrimSpace(os.Getenv("OPENWEATHER_BASE_URL")),
		DefaultLatitude:    parseFloat(os.Getenv("DEFAULT_LATITUDE"), 12.9716),
		DefaultLongitude:   parseFloat(os.Getenv("DEFAULT_LONGITUDE"), 77.5946),
		CheckInterval:      parseMinutes(os.Getenv("CHECK_INTERVAL_MINUTES")),
		TelegramToken:      strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		ModelServiceURL:    strings.TrimSpace(os.Getenv("MODEL_SERVICE_URL")),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.OpenWeatherBaseURL == "" {
		cfg.OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.CheckInterval == 0 {
		cfg.CheckInterval = 15 * time.Minute
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

func parseFloat(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseMinutes(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}
