//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weather-insights/internal/bootstrap"
	"github.com/yanqian/weather-insights/internal/domain/dashboard"
	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/infra/config"
	"github.com/yanqian/weather-insights/internal/infra/openmeteo"
	httpiface "github.com/yanqian/weather-insights/internal/interface/http"
	"github.com/yanqian/weather-insights/pkg/logger"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.New,
		provideClock,
		provideOpenMeteoConfig,
		provideForecastConfig,
		provideDashboardConfig,
		provideLocationRepository,
		provideDatasetStore,
		openmeteo.NewClient,
		wire.Bind(new(forecast.Geocoder), new(*openmeteo.Client)),
		wire.Bind(new(forecast.Provider), new(*openmeteo.Client)),
		forecast.NewService,
		dashboard.NewService,
		dashboard.NewSessionFactory,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
