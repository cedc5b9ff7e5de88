package insight

import "github.com/yanqian/weather-insights/internal/domain/forecast"

// Summary is the combined headline report.
type Summary struct {
	Heat Report `json:"heat"`
	Air  Report `json:"air"`
	UV   Report `json:"uv"`
	Wind Report `json:"wind"`
}

// Aggregate runs the headline evaluators over ds. Missing parts of the dataset only
// affect their own report.
func Aggregate(ds forecast.Dataset, unit Unit, opts Options) Summary {
	opts = opts.WithDefaults()

	var hourly forecast.Hourly
	if ds.Hourly != nil {
		hourly = *ds.Hourly
	}
	var daily forecast.Daily
	if ds.Daily != nil {
		daily = *ds.Daily
	}
	var air forecast.AirQuality
	if ds.AirQuality != nil {
		air = *ds.AirQuality
	}

	return Summary{
		Heat: Comfort(ComfortInput{
			ApparentTemperature: hourly.ApparentTemperature,
			DewPoint:            hourly.DewPoint,
			Temperature:         hourly.Temperature,
			VPD:                 hourly.VPD,
			Acclimatization:     opts.Acclimatization,
		}, unit),
		Air:  AirQuality(air.USAQI),
		UV:   UV(daily.UVIndexMax),
		Wind: WindAverage(hourly.WindSpeed10m, TodayWindow, unit, opts.NormalWindKmh),
	}
}

// MarineFor evaluates the marine series of ds, which are absent for inland cities.
func MarineFor(ds forecast.Dataset, unit Unit) Report {
	if ds.Hourly == nil {
		return Marine(nil, nil, unit)
	}
	return Marine(ds.Hourly.WaveHeight, ds.Hourly.SeaSurfaceTemperature, unit)
}
