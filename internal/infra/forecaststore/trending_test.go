package forecaststore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/infra/locationrepo"
	apperrors "github.com/yanqian/weather-insights/pkg/errors"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

type knownCities map[string]forecast.Location

func (k knownCities) Geocode(_ context.Context, name string) (forecast.Location, bool, error) {
	loc, ok := k[strings.ToLower(name)]
	return loc, ok, nil
}

type inlandProvider struct{}

func (inlandProvider) FetchHourly(context.Context, forecast.Location) (forecast.Hourly, error) {
	return forecast.Hourly{Time: []string{"2025-07-01T00:00"}, Temperature: forecast.Values(21)}, nil
}

func (inlandProvider) FetchDaily(context.Context, forecast.Location) (forecast.Daily, error) {
	return forecast.Daily{}, nil
}

func (inlandProvider) FetchAirQuality(context.Context, forecast.Location) (forecast.AirQuality, error) {
	return forecast.AirQuality{}, nil
}

func (inlandProvider) FetchMarine(context.Context, forecast.Location) (forecast.Marine, error) {
	return forecast.Marine{}, errors.New("no marine grid")
}

func TestTrendingCountsResolvedSearches(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)
	geocoder := knownCities{
		"new york": {Name: "New York", Country: "United States", Latitude: 40.7, Longitude: -74},
		"paris":    {Name: "Paris", Country: "France", Latitude: 48.9, Longitude: 2.3},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := forecast.NewService(forecast.Config{CacheTTL: time.Hour, TrendingLimit: 5}, geocoder, inlandProvider{}, store, locationrepo.NewMemoryRepository(), clock, metrics.NewForTesting(), logger)

	for _, city := range []string{"  New   York ", "new york", "Paris"} {
		_, err := svc.Load(ctx, city)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := svc.Load(ctx, "Atlantis")
		require.True(t, apperrors.IsCode(err, apperrors.CodeCityNotFound))
	}
	for i := 0; i < 2; i++ {
		_, err := svc.Reload(ctx, "Paris")
		require.NoError(t, err)
	}

	cities, err := svc.Trending(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []forecast.TrendingCity{
		{City: "New York", Count: 2},
		{City: "Paris", Count: 1},
	}, cities)

	// the cached dataset still counts as a search
	_, err = svc.Load(ctx, "PARIS")
	require.NoError(t, err)
	cities, err = svc.Trending(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []forecast.TrendingCity{{City: "New York", Count: 2}}, cities)

	cities, err = svc.Trending(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, forecast.TrendingCity{City: "Paris", Count: 2}, cities[1])
}
