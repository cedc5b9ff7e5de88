package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/weather-insights/pkg/errors"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

// Service loads the dataset for a city and tracks what people search for.
// Load counts the search toward trending once the city resolves; Reload does not.
type Service interface {
	Load(ctx context.Context, city string) (Dataset, error)
	Reload(ctx context.Context, city string) (Dataset, error)
	Trending(ctx context.Context, limit int) ([]TrendingCity, error)
}

type service struct {
	cfg       Config
	geocoder  Geocoder
	provider  Provider
	store     Store
	locations LocationRepository
	clock     clockwork.Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService wires up data acquisition.
func NewService(cfg Config, geocoder Geocoder, provider Provider, store Store, locations LocationRepository, clock clockwork.Clock, m *metrics.Metrics, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		geocoder:  geocoder,
		provider:  provider,
		store:     store,
		locations: locations,
		clock:     clock,
		metrics:   m,
		logger:    logger.With("component", "forecast.service"),
	}
}

func (s *service) Load(ctx context.Context, city string) (Dataset, error) {
	return s.load(ctx, city, true)
}

func (s *service) Reload(ctx context.Context, city string) (Dataset, error) {
	return s.load(ctx, city, false)
}

func (s *service) load(ctx context.Context, city string, count bool) (Dataset, error) {
	display := strings.Join(strings.Fields(city), " ")
	query := NormalizeCity(display)
	if query == "" {
		return Dataset{}, apperrors.Wrap(apperrors.CodeInvalidInput, "city cannot be empty", nil)
	}

	cached, ok, err := s.store.GetDataset(ctx, query)
	if err != nil {
		s.logger.Warn("dataset cache lookup failed", "city", query, "error", err)
	}
	if ok {
		s.metrics.DatasetCache.WithLabelValues("hit").Inc()
		if count {
			s.countSearch(ctx, query, display)
		}
		return cached, nil
	}
	s.metrics.DatasetCache.WithLabelValues("miss").Inc()

	loc, err := s.resolveLocation(ctx, query, display)
	if err != nil {
		return Dataset{}, err
	}
	if count {
		s.countSearch(ctx, loc.Query, display)
	}

	ds, err := s.fetch(ctx, loc)
	if err != nil {
		return Dataset{}, err
	}

	if err := s.store.SaveDataset(ctx, query, ds, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dataset cache save failed", "city", query, "error", err)
	}
	s.logger.Info("dataset loaded", "city", query, "location", loc.DisplayName(), "marine", ds.Hourly.WaveHeight != nil)
	return ds, nil
}

func (s *service) Trending(ctx context.Context, limit int) ([]TrendingCity, error) {
	if limit <= 0 {
		limit = s.cfg.TrendingLimit
	}
	cities, err := s.store.TopCities(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load trending cities: %w", err)
	}
	return cities, nil
}

// countSearch is best effort: a failed increment never fails the load.
func (s *service) countSearch(ctx context.Context, canonical, display string) {
	if err := s.store.IncrementCity(ctx, canonical, display); err != nil {
		s.logger.Warn("trending increment failed", "city", canonical, "error", err)
	}
}

func (s *service) resolveLocation(ctx context.Context, query, display string) (Location, error) {
	loc, found, err := s.locations.Find(ctx, query)
	if err != nil {
		s.logger.Warn("location lookup failed", "city", query, "error", err)
	}
	if found {
		loc.Query = query
		return loc, nil
	}

	loc, found, err = s.geocoder.Geocode(ctx, display)
	if err != nil {
		return Location{}, apperrors.Wrap(apperrors.CodeGeocodeError, "geocoding service failed", err)
	}
	if !found {
		return Location{}, apperrors.Wrap(apperrors.CodeCityNotFound, fmt.Sprintf("no location found for %q", display), nil)
	}
	loc.Query = query
	if err := s.locations.Save(ctx, loc); err != nil {
		s.logger.Warn("location save failed", "city", query, "error", err)
	}
	return loc, nil
}

// fetch runs the mandatory requests in an errgroup and the marine request beside it.
// Marine failures only leave the marine series empty.
func (s *service) fetch(ctx context.Context, loc Location) (Dataset, error) {
	marineCtx, cancelMarine := context.WithCancel(ctx)
	defer cancelMarine()

	var (
		marine    Marine
		marineErr error
	)
	marineDone := make(chan struct{})
	go func() {
		defer close(marineDone)
		marine, marineErr = s.provider.FetchMarine(marineCtx, loc)
	}()

	var (
		hourly Hourly
		daily  Daily
		air    AirQuality
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.provider.FetchHourly(gctx, loc)
		if err != nil {
			return fmt.Errorf("hourly forecast: %w", err)
		}
		hourly = res
		return nil
	})
	g.Go(func() error {
		res, err := s.provider.FetchDaily(gctx, loc)
		if err != nil {
			return fmt.Errorf("daily forecast: %w", err)
		}
		daily = res
		return nil
	})
	g.Go(func() error {
		res, err := s.provider.FetchAirQuality(gctx, loc)
		if err != nil {
			return fmt.Errorf("air quality: %w", err)
		}
		air = res
		return nil
	})

	if err := g.Wait(); err != nil {
		cancelMarine()
		<-marineDone
		return Dataset{}, apperrors.Wrap(apperrors.CodeForecastError, "failed to load forecast data", err)
	}
	<-marineDone

	if marineErr != nil {
		s.metrics.MarineFallbacks.Inc()
		s.logger.Warn("marine data unavailable", "location", loc.DisplayName(), "error", marineErr)
	} else {
		hourly.WaveHeight = alignByTime(hourly.Time, marine.Time, marine.WaveHeight)
		hourly.SeaSurfaceTemperature = alignByTime(hourly.Time, marine.Time, marine.SeaSurfaceTemperature)
	}

	return Dataset{
		Location:   loc,
		Hourly:     &hourly,
		Daily:      &daily,
		AirQuality: &air,
		FetchedAt:  s.clock.Now().UTC(),
	}, nil
}

// alignByTime reorders values sampled at times onto the target timestamps.
func alignByTime(target, times []string, values Series) Series {
	if len(values) == 0 {
		return nil
	}
	if slices.Equal(target, times) && len(values) == len(target) {
		return values
	}
	index := make(map[string]int, len(times))
	for i, ts := range times {
		index[ts] = i
	}
	out := make(Series, len(target))
	for i, ts := range target {
		if j, ok := index[ts]; ok && j < len(values) {
			out[i] = values[j]
		}
	}
	return out
}
