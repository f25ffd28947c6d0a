package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultForecastURL = "https://api.weatherapi.com/v1/forecast.json"

	// Free-tier cap on the forecast horizon.
	defaultForecastDays = 3

	// Keys issued by the provider are longer than this; anything shorter
	// is a paste error, not a key.
	minAPIKeyLength = 20
)

// Config holds the application configuration
type Config struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	ForecastDays      int
}

// Load reads the .env file (if present) and the environment and builds the
// configuration. A missing .env is not an error in deployment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		WeatherAPIKey:     os.Getenv("WEATHER_API_KEY"),
		WeatherAPIBaseURL: getEnvOr("WEATHER_API_BASE_URL", defaultForecastURL),
		ForecastDays:      getEnvIntOr("WEATHER_FORECAST_DAYS", defaultForecastDays),
	}
}

// ResolveAPIKey returns the key to use for requests. A non-empty provided key
// wins over the environment but must look like a real key; an empty provided
// key falls back to WEATHER_API_KEY.
func (c *Config) ResolveAPIKey(provided string) (string, error) {
	if provided != "" {
		if len(provided) < minAPIKeyLength {
			return "", errors.New("invalid API key (leave empty to load from .env)")
		}
		return provided, nil
	}
	if c.WeatherAPIKey == "" {
		return "", errors.New("WEATHER_API_KEY is not set")
	}
	return c.WeatherAPIKey, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
