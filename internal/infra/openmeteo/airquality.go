package openmeteo

import (
	"context"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

type airQualityResponse struct {
	Hourly struct {
		Time            []string        `json:"time"`
		USAQI           forecast.Series `json:"us_aqi"`
		PM10            forecast.Series `json:"pm10"`
		PM25            forecast.Series `json:"pm2_5"`
		CarbonMonoxide  forecast.Series `json:"carbon_monoxide"`
		NitrogenDioxide forecast.Series `json:"nitrogen_dioxide"`
		SulphurDioxide  forecast.Series `json:"sulphur_dioxide"`
		Ozone           forecast.Series `json:"ozone"`
	} `json:"hourly"`
}

// FetchAirQuality loads today and tomorrow's pollutant series.
func (c *Client) FetchAirQuality(ctx context.Context, loc forecast.Location) (forecast.AirQuality, error) {
	params := coordinates(loc)
	params.Set("hourly", "us_aqi,pm10,pm2_5,carbon_monoxide,nitrogen_dioxide,sulphur_dioxide,ozone")
	params.Set("forecast_days", "2")

	var raw airQualityResponse
	if err := c.getJSON(ctx, "air_quality", c.airQualityURL, params, &raw); err != nil {
		return forecast.AirQuality{}, err
	}
	h := raw.Hourly
	return forecast.AirQuality{
		Time:            h.Time,
		USAQI:           h.USAQI,
		PM25:            h.PM25,
		PM10:            h.PM10,
		CarbonMonoxide:  h.CarbonMonoxide,
		NitrogenDioxide: h.NitrogenDioxide,
		SulphurDioxide:  h.SulphurDioxide,
		Ozone:           h.Ozone,
	}, nil
}
