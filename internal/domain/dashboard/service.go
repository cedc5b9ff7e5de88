package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/domain/insight"
	apperrors "github.com/yanqian/weather-insights/pkg/errors"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

const (
	hourLayout   = "2006-01-02T15"
	forecastDays = 10
)

// Service renders dashboards and evaluates raw datasets.
type Service interface {
	Build(ctx context.Context, req Request) (Response, error)
	Evaluate(req EvaluateRequest) (EvaluateResponse, error)
}

type service struct {
	cfg      Config
	forecast forecast.Service
	clock    clockwork.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewService is a wire provider for the dashboard domain.
func NewService(cfg Config, forecastSvc forecast.Service, clock clockwork.Clock, m *metrics.Metrics, logger *slog.Logger) Service {
	if cfg.DefaultUnit == "" {
		cfg.DefaultUnit = insight.UnitMetric
	}
	cfg.Options = cfg.Options.WithDefaults()
	return &service{
		cfg:      cfg,
		forecast: forecastSvc,
		clock:    clock,
		metrics:  m,
		logger:   logger.With("component", "dashboard.service"),
	}
}

func (s *service) Build(ctx context.Context, req Request) (Response, error) {
	unit, err := s.unit(req.Unit)
	if err != nil {
		s.record("invalid")
		return Response{}, err
	}
	city := strings.TrimSpace(req.City)
	if city == "" {
		city = s.cfg.DefaultCity
	}

	load := s.forecast.Load
	if req.Refresh {
		load = s.forecast.Reload
	}
	ds, err := load(ctx, city)
	if err != nil {
		s.record("error")
		return Response{}, err
	}

	resp := s.render(ds, unit)
	s.record("success")
	s.logger.Info("dashboard built", "city", ds.Location.DisplayName(), "unit", unit)
	return resp, nil
}

func (s *service) Evaluate(req EvaluateRequest) (EvaluateResponse, error) {
	unit, err := s.unit(req.Unit)
	if err != nil {
		return EvaluateResponse{}, err
	}
	opts := s.cfg.Options
	if req.Options != nil {
		opts = req.Options.WithDefaults()
	}
	return EvaluateResponse{
		Unit:    unit,
		Summary: insight.Aggregate(req.Dataset, unit, opts),
		Marine:  insight.MarineFor(req.Dataset, unit),
	}, nil
}

func (s *service) unit(raw string) (insight.Unit, error) {
	if strings.TrimSpace(raw) == "" {
		return s.cfg.DefaultUnit, nil
	}
	unit, err := insight.ParseUnit(raw)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}
	return unit, nil
}

func (s *service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.DashboardBuilds.WithLabelValues(outcome).Inc()
	}
}

func (s *service) render(ds forecast.Dataset, unit insight.Unit) Response {
	var hourly forecast.Hourly
	if ds.Hourly != nil {
		hourly = *ds.Hourly
	}

	now := s.clock.Now()
	local := now.In(zone(ds.Location.Timezone, hourly.Timezone))
	current := currentIndex(hourly.Time, local)
	condition := currentCondition(ds, current)

	resp := Response{
		Location:    ds.Location,
		Unit:        unit,
		Condition:   condition,
		IsDaytime:   local.Hour() >= 6 && local.Hour() < 18,
		Insights:    insight.Aggregate(ds, unit, s.cfg.Options),
		Marine:      insight.MarineFor(ds, unit),
		Cards:       buildCards(ds, unit, condition),
		Forecast:    buildForecast(ds.Daily, unit),
		FetchedAt:   ds.FetchedAt,
		GeneratedAt: now.UTC(),
		Supplementary: Supplementary{
			Temperature: insight.GroundTemperature(hourly.Temperature, unit, s.cfg.Options),
			Humidity:    insight.Humidity(hourly.RelativeHumidity, s.cfg.Options),
			Solar:       insight.Solar(hourly.DirectRadiation),
			CloudCover:  insight.CloudCover(hourly.CloudCover),
			WindHazard:  insight.WindHazard(hourly.WindSpeed10m, insight.UpcomingWindow(current), unit),
		},
	}
	if current < len(hourly.Time) {
		resp.CurrentHour = hourly.Time[current]
	}
	if peak, ok := insight.PeakToday(hourly.Temperature, hourly.Time); ok {
		peak.Value = unit.TemperatureValue(peak.Value)
		resp.Supplementary.TemperaturePeak = &peak
	}
	return resp
}

func zone(names ...string) *time.Location {
	for _, name := range names {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}

// currentIndex finds the hourly sample for the local wall clock hour, or the start
// of today when the timeline does not contain it.
func currentIndex(times []string, local time.Time) int {
	key := local.Format(hourLayout)
	for i, ts := range times {
		if len(ts) >= len(hourLayout) && ts[:len(hourLayout)] == key {
			return i
		}
	}
	return insight.TodayWindow.Start
}

func currentCondition(ds forecast.Dataset, current int) insight.Condition {
	if ds.Hourly != nil {
		if code, ok := ds.Hourly.WeatherCode.At(current); ok {
			return insight.ConditionFor(int(code))
		}
	}
	if ds.Daily != nil {
		if code, ok := ds.Daily.WeatherCode.At(0); ok {
			return insight.ConditionFor(int(code))
		}
	}
	return ""
}

func buildForecast(daily *forecast.Daily, unit insight.Unit) []DayForecast {
	if daily == nil {
		return []DayForecast{}
	}
	n := min(len(daily.Time), forecastDays)
	days := make([]DayForecast, 0, n)
	for i := 0; i < n; i++ {
		day := DayForecast{Date: daily.Time[i]}
		if t, err := time.Parse(time.DateOnly, daily.Time[i]); err == nil {
			day.Weekday = t.Weekday().String()[:3]
		}
		if v, ok := daily.TemperatureMax.At(i); ok {
			day.TempMax = forecast.Float(unit.TemperatureValue(v))
		}
		if v, ok := daily.TemperatureMin.At(i); ok {
			day.TempMin = forecast.Float(unit.TemperatureValue(v))
		}
		if v, ok := daily.RelativeHumidityMax.At(i); ok {
			day.HumidityMax = forecast.Float(v)
		}
		if code, ok := daily.WeatherCode.At(i); ok {
			day.Condition = insight.ConditionFor(int(code))
		}
		days = append(days, day)
	}
	return days
}
