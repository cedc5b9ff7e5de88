package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

var fixtureStart = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

func flat(n int, v float64) forecast.Series {
	s := make(forecast.Series, n)
	for i := range s {
		s[i] = forecast.Float(v)
	}
	return s
}

func hourlyTimes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fixtureStart.Add(time.Duration(i) * time.Hour).Format("2006-01-02T15:04")
	}
	return out
}

func sampleDataset() forecast.Dataset {
	daily := &forecast.Daily{
		TemperatureMax:      flat(10, 35),
		TemperatureMin:      flat(10, 24),
		RelativeHumidityMax: flat(10, 80),
		WeatherCode:         flat(10, 61),
		UVIndexMax:          flat(10, 5),
	}
	for i := 0; i < 10; i++ {
		daily.Time = append(daily.Time, fixtureStart.AddDate(0, 0, i+1).Format(time.DateOnly))
	}
	return forecast.Dataset{
		Location: forecast.Location{Query: "new delhi", Name: "New Delhi", Country: "India", Timezone: "UTC"},
		Hourly: &forecast.Hourly{
			Timezone:            "UTC",
			Time:                hourlyTimes(72),
			Temperature:         flat(72, 30),
			ApparentTemperature: flat(72, 30),
			DewPoint:            flat(72, 18),
			RelativeHumidity:    flat(72, 60),
			VPD:                 flat(72, 1.2),
			WindSpeed10m:        flat(72, 15),
			Precipitation:       flat(72, 0.5),
			WeatherCode:         flat(72, 0),
			DirectRadiation:     flat(72, 300),
			CloudCover:          flat(72, 20),
		},
		Daily:      daily,
		AirQuality: &forecast.AirQuality{USAQI: flat(48, 40)},
		FetchedAt:  fixtureStart,
	}
}

type stubForecast struct {
	mu      sync.Mutex
	cities  []string
	reloads []string
	err     error
	ds      forecast.Dataset
}

func (s *stubForecast) Load(_ context.Context, city string) (forecast.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities = append(s.cities, city)
	if s.err != nil {
		return forecast.Dataset{}, s.err
	}
	return s.ds, nil
}

func (s *stubForecast) Reload(_ context.Context, city string) (forecast.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads = append(s.reloads, city)
	if s.err != nil {
		return forecast.Dataset{}, s.err
	}
	return s.ds, nil
}

func (s *stubForecast) Trending(context.Context, int) ([]forecast.TrendingCity, error) {
	return nil, fmt.Errorf("not used")
}

func (s *stubForecast) loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cities)
}
