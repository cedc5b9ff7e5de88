package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-insights/internal/domain/dashboard"
	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/domain/insight"
	"github.com/yanqian/weather-insights/internal/infra/config"
	"github.com/yanqian/weather-insights/internal/infra/forecaststore"
	"github.com/yanqian/weather-insights/internal/infra/locationrepo"
	"github.com/yanqian/weather-insights/internal/infra/openmeteo"
)

func provideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func provideOpenMeteoConfig(cfg *config.Config) openmeteo.Config {
	return openmeteo.Config{
		GeocodingURL:  cfg.OpenMeteo.GeocodingURL,
		ForecastURL:   cfg.OpenMeteo.ForecastURL,
		AirQualityURL: cfg.OpenMeteo.AirQualityURL,
		MarineURL:     cfg.OpenMeteo.MarineURL,
		Timeout:       cfg.OpenMeteo.Timeout,
	}
}

func provideForecastConfig(cfg *config.Config) forecast.Config {
	return forecast.Config{
		CacheTTL:      cfg.Cache.TTL,
		TrendingLimit: cfg.Cache.TrendingLimit,
	}
}

func provideDashboardConfig(cfg *config.Config) (dashboard.Config, error) {
	unit, err := insight.ParseUnit(cfg.Dashboard.DefaultUnit)
	if err != nil {
		return dashboard.Config{}, err
	}
	return dashboard.Config{
		DefaultCity:     cfg.Dashboard.DefaultCity,
		DefaultUnit:     unit,
		Options:         cfg.Insight,
		RefreshInterval: cfg.Dashboard.RefreshInterval,
	}, nil
}

func provideLocationRepository(cfg *config.Config, logger *slog.Logger) forecast.LocationRepository {
	fallback := locationrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Locations.Postgres.DSN)
	if dsn == "" {
		logger.Info("locations postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Locations.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Locations.Postgres.MaxConns
	}
	if cfg.Locations.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Locations.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	repo := locationrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("locations schema setup failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("locations postgres repository enabled")
	return repo
}

func provideDatasetStore(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) forecast.Store {
	if cfg.Cache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Cache.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return forecaststore.NewMemoryStore(clock)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return forecaststore.NewMemoryStore(clock)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("dataset valkey store enabled", "addr", cfg.Cache.Valkey.Addr)
			return forecaststore.NewValkeyStore(client, cfg.Cache.Valkey.Prefix)
		}
	}
	return forecaststore.NewMemoryStore(clock)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
