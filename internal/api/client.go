package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"weathervane/internal/logger"
)

// RateLimitSettings caps how many requests the client issues per duration.
type RateLimitSettings struct {
	MaxRequests int
	PerDuration time.Duration
}

type Client struct {
	httpClient *http.Client
	rateLimit  RateLimitSettings
	limiter    *time.Ticker
	ready      chan struct{}
}

func NewClient(rl RateLimitSettings) *Client {
	interval := rl.PerDuration / time.Duration(rl.MaxRequests)

	ticker := time.NewTicker(interval)

	// One token up front so the first request does not wait a full interval.
	ready := make(chan struct{}, 1)
	ready <- struct{}{}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		rateLimit:  rl,
		limiter:    ticker,
		ready:      ready,
	}
}

// Close stops the rate-limit ticker. The client must not be used afterwards.
func (c *Client) Close() {
	c.limiter.Stop()
}

func (c *Client) Do(ctx context.Context, url string, headers map[string]string) ([]byte, error) {

	select {
	case <-c.ready:
	case <-c.limiter.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	const maxRetries = 3
	for i := 0; i < maxRetries; i++ {
		logger.Debug("Making request (attempt %d)", i+1)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			logger.Error("HTTP request failed (attempt %d): %v", i+1, err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			time.Sleep(2 * time.Second)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			return body, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			logger.Error("API returned 429 Too Many Requests (attempt %d)", i+1)
			time.Sleep(5 * time.Second)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		logger.Error("API returned status code %d (attempt %d). Body: %s", resp.StatusCode, i+1, string(body))
		return nil, errors.New("API returned non-OK status: " + resp.Status)
	}

	return nil, errors.New("failed to fetch data after max retries")
}
