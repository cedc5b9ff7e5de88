package openmeteo

import (
	"context"
	"strings"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

var hourlyVariables = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"dew_point_2m",
	"vapour_pressure_deficit",
	"wind_speed_10m",
	"precipitation",
	"apparent_temperature",
	"weather_code",
	"temperature_80m",
	"temperature_120m",
	"temperature_180m",
	"wind_speed_80m",
	"wind_speed_120m",
	"wind_speed_180m",
	"shortwave_radiation",
	"direct_radiation",
	"cloud_cover",
}

var dailyVariables = []string{
	"weather_code",
	"temperature_2m_max",
	"temperature_2m_min",
	"relative_humidity_2m_max",
	"wind_speed_10m_max",
	"uv_index_max",
}

type hourlyResponse struct {
	Timezone string      `json:"timezone"`
	Hourly   hourlyBlock `json:"hourly"`
}

type hourlyBlock struct {
	Time                  []string        `json:"time"`
	Temperature2m         forecast.Series `json:"temperature_2m"`
	RelativeHumidity2m    forecast.Series `json:"relative_humidity_2m"`
	DewPoint2m            forecast.Series `json:"dew_point_2m"`
	VapourPressureDeficit forecast.Series `json:"vapour_pressure_deficit"`
	WindSpeed10m          forecast.Series `json:"wind_speed_10m"`
	Precipitation         forecast.Series `json:"precipitation"`
	ApparentTemperature   forecast.Series `json:"apparent_temperature"`
	WeatherCode           forecast.Series `json:"weather_code"`
	Temperature80m        forecast.Series `json:"temperature_80m"`
	Temperature120m       forecast.Series `json:"temperature_120m"`
	Temperature180m       forecast.Series `json:"temperature_180m"`
	WindSpeed80m          forecast.Series `json:"wind_speed_80m"`
	WindSpeed120m         forecast.Series `json:"wind_speed_120m"`
	WindSpeed180m         forecast.Series `json:"wind_speed_180m"`
	ShortwaveRadiation    forecast.Series `json:"shortwave_radiation"`
	DirectRadiation       forecast.Series `json:"direct_radiation"`
	CloudCover            forecast.Series `json:"cloud_cover"`
}

type dailyResponse struct {
	Daily dailyBlock `json:"daily"`
}

type dailyBlock struct {
	Time                  []string        `json:"time"`
	WeatherCode           forecast.Series `json:"weather_code"`
	Temperature2mMax      forecast.Series `json:"temperature_2m_max"`
	Temperature2mMin      forecast.Series `json:"temperature_2m_min"`
	RelativeHumidity2mMax forecast.Series `json:"relative_humidity_2m_max"`
	WindSpeed10mMax       forecast.Series `json:"wind_speed_10m_max"`
	UVIndexMax            forecast.Series `json:"uv_index_max"`
}

// FetchHourly loads yesterday, today and tomorrow hour by hour.
func (c *Client) FetchHourly(ctx context.Context, loc forecast.Location) (forecast.Hourly, error) {
	params := coordinates(loc)
	params.Set("hourly", strings.Join(hourlyVariables, ","))
	params.Set("past_days", "1")
	params.Set("forecast_days", "2")
	params.Set("wind_speed_unit", "kmh")

	var raw hourlyResponse
	if err := c.getJSON(ctx, "forecast_hourly", c.forecastURL, params, &raw); err != nil {
		return forecast.Hourly{}, err
	}
	h := raw.Hourly
	return forecast.Hourly{
		Timezone:            raw.Timezone,
		Time:                h.Time,
		Temperature:         h.Temperature2m,
		ApparentTemperature: h.ApparentTemperature,
		DewPoint:            h.DewPoint2m,
		RelativeHumidity:    h.RelativeHumidity2m,
		VPD:                 h.VapourPressureDeficit,
		WindSpeed10m:        h.WindSpeed10m,
		WindSpeed80m:        h.WindSpeed80m,
		WindSpeed120m:       h.WindSpeed120m,
		WindSpeed180m:       h.WindSpeed180m,
		Temperature80m:      h.Temperature80m,
		Temperature120m:     h.Temperature120m,
		Temperature180m:     h.Temperature180m,
		Precipitation:       h.Precipitation,
		WeatherCode:         h.WeatherCode,
		ShortwaveRadiation:  h.ShortwaveRadiation,
		DirectRadiation:     h.DirectRadiation,
		CloudCover:          h.CloudCover,
	}, nil
}

// FetchDaily loads the ten day outlook.
func (c *Client) FetchDaily(ctx context.Context, loc forecast.Location) (forecast.Daily, error) {
	params := coordinates(loc)
	params.Set("daily", strings.Join(dailyVariables, ","))
	params.Set("forecast_days", "10")
	params.Set("wind_speed_unit", "kmh")

	var raw dailyResponse
	if err := c.getJSON(ctx, "forecast_daily", c.forecastURL, params, &raw); err != nil {
		return forecast.Daily{}, err
	}
	d := raw.Daily
	return forecast.Daily{
		Time:                d.Time,
		WeatherCode:         d.WeatherCode,
		TemperatureMax:      d.Temperature2mMax,
		TemperatureMin:      d.Temperature2mMin,
		RelativeHumidityMax: d.RelativeHumidity2mMax,
		WindSpeedMax:        d.WindSpeed10mMax,
		UVIndexMax:          d.UVIndexMax,
	}, nil
}
