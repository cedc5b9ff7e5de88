package openmeteo

import (
	"context"
	"net/url"
	"strings"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// Geocode resolves name to the best matching place.
func (c *Client) Geocode(ctx context.Context, name string) (forecast.Location, bool, error) {
	params := url.Values{}
	params.Set("name", strings.TrimSpace(name))
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	var raw geocodingResponse
	if err := c.getJSON(ctx, "geocoding", c.geocodingURL, params, &raw); err != nil {
		return forecast.Location{}, false, err
	}
	if len(raw.Results) == 0 {
		return forecast.Location{}, false, nil
	}
	top := raw.Results[0]
	return forecast.Location{
		Name:      top.Name,
		Country:   top.Country,
		Latitude:  top.Latitude,
		Longitude: top.Longitude,
		Timezone:  top.Timezone,
	}, true, nil
}
