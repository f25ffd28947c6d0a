package weather

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"weathervane/internal/api"
	"weathervane/internal/config"
	"weathervane/internal/strictjson"
)

type Service struct {
	Config *config.Config
	Client *api.Client
}

func NewService(cfg *config.Config) *Service {

	rlSettings := api.RateLimitSettings{
		MaxRequests: 30,
		PerDuration: time.Minute,
	}
	client := api.NewClient(rlSettings)

	return &Service{
		Config: cfg,
		Client: client,
	}
}

// Close releases the service's HTTP client resources.
func (s *Service) Close() {
	s.Client.Close()
}

// FetchData requests the forecast-with-air-quality payload for a location
// query (city name, IP address, coordinates or postal code).
func (s *Service) FetchData(ctx context.Context, query string) ([]byte, error) {
	q := url.QueryEscape(strings.TrimSpace(query))
	url := fmt.Sprintf("%s?key=%s&q=%s&days=%d&aqi=yes",
		s.Config.WeatherAPIBaseURL, s.Config.WeatherAPIKey, q, s.Config.ForecastDays)
	return s.Client.Do(ctx, url, nil)
}

// ParseData decodes a payload into the response graph. The decode is strict:
// a missing field, a type mismatch or a malformed document is a single
// failure, never a partially populated result.
func (s *Service) ParseData(data []byte) (*WeatherData, error) {
	var resp WeatherData
	if err := strictjson.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse weather data: %w", err)
	}
	return &resp, nil
}
