package openmeteo

import (
	"context"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

type marineResponse struct {
	Hourly struct {
		Time                  []string        `json:"time"`
		WaveHeight            forecast.Series `json:"wave_height"`
		SeaSurfaceTemperature forecast.Series `json:"sea_surface_temperature"`
	} `json:"hourly"`
}

// FetchMarine loads wave height and sea temperature on the same 72 hour grid as
// FetchHourly. Inland coordinates return an error or all-null series.
func (c *Client) FetchMarine(ctx context.Context, loc forecast.Location) (forecast.Marine, error) {
	params := coordinates(loc)
	params.Set("hourly", "wave_height,sea_surface_temperature")
	params.Set("past_days", "1")
	params.Set("forecast_days", "2")

	var raw marineResponse
	if err := c.getJSON(ctx, "marine", c.marineURL, params, &raw); err != nil {
		return forecast.Marine{}, err
	}
	return forecast.Marine{
		Time:                  raw.Hourly.Time,
		WaveHeight:            raw.Hourly.WaveHeight,
		SeaSurfaceTemperature: raw.Hourly.SeaSurfaceTemperature,
	}, nil
}
