package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

const (
	defaultGeocodingURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL   = "https://api.open-meteo.com/v1/forecast"
	defaultAirQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"
	defaultMarineURL     = "https://marine-api.open-meteo.com/v1/marine"
	defaultTimeout       = 10 * time.Second
)

// Config points the client at the Open-Meteo endpoints.
type Config struct {
	GeocodingURL  string
	ForecastURL   string
	AirQualityURL string
	MarineURL     string
	Timeout       time.Duration
}

// Client talks to the Open-Meteo geocoding, forecast, air quality and marine APIs.
type Client struct {
	geocodingURL  string
	forecastURL   string
	airQualityURL string
	marineURL     string
	httpClient    *http.Client
	metrics       *metrics.Metrics
}

var (
	_ forecast.Geocoder = (*Client)(nil)
	_ forecast.Provider = (*Client)(nil)
)

// NewClient builds an API client. Empty URLs fall back to the public endpoints.
func NewClient(cfg Config, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		geocodingURL:  endpointOr(cfg.GeocodingURL, defaultGeocodingURL),
		forecastURL:   endpointOr(cfg.ForecastURL, defaultForecastURL),
		airQualityURL: endpointOr(cfg.AirQualityURL, defaultAirQualityURL),
		marineURL:     endpointOr(cfg.MarineURL, defaultMarineURL),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
	}
}

func endpointOr(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return strings.TrimRight(trimmed, "/")
}

// getJSON issues a GET against endpoint and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, name, endpoint string, params url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		c.metrics.UpstreamRequests.WithLabelValues(name, outcome).Inc()
		c.metrics.UpstreamDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", name, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%s request error: status=%d body=%s", name, resp.StatusCode, reason(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", name, err)
	}
	return nil
}

// reason extracts the Open-Meteo error reason, falling back to the raw body.
func reason(payload []byte) string {
	var body struct {
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Reason != "" {
		return body.Reason
	}
	return string(payload)
}

func coordinates(loc forecast.Location) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	params.Set("timezone", "auto")
	return params
}
