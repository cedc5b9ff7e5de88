package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-insights/internal/domain/dashboard"
	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/domain/insight"
	"github.com/yanqian/weather-insights/internal/infra/config"
	apperrors "github.com/yanqian/weather-insights/pkg/errors"
	"github.com/yanqian/weather-insights/pkg/metrics"
)

func TestRouter_DashboardSuccess(t *testing.T) {
	svc := &stubDashboard{
		buildFn: func(_ context.Context, req dashboard.Request) (dashboard.Response, error) {
			require.Equal(t, dashboard.Request{City: "Oslo", Unit: "imperial"}, req)
			return dashboard.Response{Location: forecast.Location{Name: "Oslo", Country: "Norway"}, Unit: insight.UnitImperial}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/dashboard?city=Oslo&unit=imperial", "", newRouterUnderTest(t, svc, &stubForecast{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got dashboard.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Oslo", got.Location.Name)
	require.Equal(t, insight.UnitImperial, got.Unit)
}

func TestRouter_DashboardErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.Wrap(apperrors.CodeInvalidInput, "city cannot be empty", nil), http.StatusBadRequest, apperrors.CodeInvalidInput},
		{apperrors.Wrap(apperrors.CodeCityNotFound, `no location found for "atlantis"`, nil), http.StatusNotFound, apperrors.CodeCityNotFound},
		{apperrors.Wrap(apperrors.CodeGeocodeError, "geocoding failed", errors.New("timeout")), http.StatusBadGateway, apperrors.CodeGeocodeError},
		{apperrors.Wrap(apperrors.CodeForecastError, "failed to load forecast data", errors.New("status=500")), http.StatusBadGateway, apperrors.CodeForecastError},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			svc := &stubDashboard{
				buildFn: func(context.Context, dashboard.Request) (dashboard.Response, error) {
					return dashboard.Response{}, tc.err
				},
			}

			recorder := performRequest(http.MethodGet, "/api/v1/dashboard?city=x", "", newRouterUnderTest(t, svc, &stubForecast{}))
			require.Equal(t, tc.status, recorder.Code)

			errBody := decodeErrorBody(t, recorder.Body.Bytes())
			require.Equal(t, tc.code, errBody["error"]["code"])
			require.NotEmpty(t, errBody["error"]["message"])
		})
	}
}

func TestRouter_EvaluateSuccess(t *testing.T) {
	svc := &stubDashboard{
		evaluateFn: func(req dashboard.EvaluateRequest) (dashboard.EvaluateResponse, error) {
			require.Equal(t, "metric", req.Unit)
			require.NotNil(t, req.Dataset.AirQuality)
			require.Len(t, req.Dataset.AirQuality.USAQI, 3)
			require.Nil(t, req.Dataset.AirQuality.USAQI[1])
			return dashboard.EvaluateResponse{Unit: insight.UnitMetric, Summary: insight.Summary{Air: insight.Report{RiskLevel: "GOOD"}}}, nil
		},
	}

	body := `{"unit":"metric","dataset":{"airQuality":{"usAqi":[40,null,42]}}}`
	recorder := performRequest(http.MethodPost, "/api/v1/insights", body, newRouterUnderTest(t, svc, &stubForecast{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got dashboard.EvaluateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "GOOD", got.Summary.Air.RiskLevel)
}

func TestRouter_EvaluateInvalidJSON(t *testing.T) {
	recorder := performRequest(http.MethodPost, "/api/v1/insights", `{"unit":123}`, newRouterUnderTest(t, &stubDashboard{}, &stubForecast{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_TrendingCities(t *testing.T) {
	fc := &stubForecast{items: []forecast.TrendingCity{{City: "New Delhi", Count: 3}}}
	server := newRouterUnderTest(t, &stubDashboard{}, fc)

	recorder := performRequest(http.MethodGet, "/api/v1/cities/trending?limit=3", "", server)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 3, fc.limit)

	var got struct {
		Cities []forecast.TrendingCity `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, fc.items, got.Cities)

	recorder = performRequest(http.MethodGet, "/api/v1/cities/trending?limit=abc", "", server)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	server := newRouterUnderTest(t, &stubDashboard{}, &stubForecast{})

	recorder := performRequest(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())

	recorder = performRequest(http.MethodGet, "/metrics", "", server)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_DashboardStream(t *testing.T) {
	svc := &stubDashboard{
		buildFn: func(_ context.Context, req dashboard.Request) (dashboard.Response, error) {
			return dashboard.Response{Location: forecast.Location{Name: req.City}}, nil
		},
	}
	ts := httptest.NewServer(newRouterUnderTest(t, svc, &stubForecast{}).Handler)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/dashboard/stream?city=Lima", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	frame := readFrame(t, bufio.NewReader(resp.Body))
	require.Equal(t, "dashboard", frame["event"])
	require.NotEmpty(t, frame["id"])

	var got dashboard.Response
	require.NoError(t, json.Unmarshal([]byte(frame["data"]), &got))
	require.Equal(t, "Lima", got.Location.Name)
}

func TestRouter_DashboardStreamError(t *testing.T) {
	svc := &stubDashboard{
		buildFn: func(context.Context, dashboard.Request) (dashboard.Response, error) {
			return dashboard.Response{}, apperrors.Wrap(apperrors.CodeCityNotFound, "no location", nil)
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/dashboard/stream?city=x", "", newRouterUnderTest(t, svc, &stubForecast{}))
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.Equal(t, apperrors.CodeCityNotFound, decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_RateLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	server := newRouter(t, cfg, clock, &stubDashboard{}, &stubForecast{})

	require.Equal(t, http.StatusOK, performRequest(http.MethodGet, "/api/v1/dashboard", "", server).Code)

	recorder := performRequest(http.MethodGet, "/api/v1/dashboard", "", server)
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])

	clock.Advance(time.Minute)
	require.Equal(t, http.StatusOK, performRequest(http.MethodGet, "/api/v1/dashboard", "", server).Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.AllowedOrigins = []string{"https://weather.example"}
	server := newRouter(t, cfg, clockwork.NewFakeClock(), &stubDashboard{}, &stubForecast{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
	req.Header.Set("Origin", "https://weather.example")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://weather.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func readFrame(t *testing.T, r *bufio.Reader) map[string]string {
	t.Helper()
	frame := map[string]string{}
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return frame
		}
		key, value, ok := strings.Cut(line, ": ")
		require.True(t, ok, "malformed line %q", line)
		frame[key] = value
	}
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newRouterUnderTest(t *testing.T, svc dashboard.Service, fc forecast.Service) *http.Server {
	t.Helper()
	return newRouter(t, testConfig(), clockwork.NewFakeClock(), svc, fc)
}

func newRouter(t *testing.T, cfg *config.Config, clock clockwork.Clock, svc dashboard.Service, fc forecast.Service) *http.Server {
	t.Helper()
	logger := newTestLogger()
	sessions := dashboard.NewSessionFactory(dashboard.Config{RefreshInterval: time.Hour}, svc, clock, logger)
	handler := NewHandler(svc, fc, sessions, metrics.NewForTesting(), logger)
	return NewRouter(cfg, handler, clock)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubDashboard struct {
	buildFn    func(ctx context.Context, req dashboard.Request) (dashboard.Response, error)
	evaluateFn func(req dashboard.EvaluateRequest) (dashboard.EvaluateResponse, error)
}

func (s *stubDashboard) Build(ctx context.Context, req dashboard.Request) (dashboard.Response, error) {
	if s.buildFn != nil {
		return s.buildFn(ctx, req)
	}
	return dashboard.Response{}, nil
}

func (s *stubDashboard) Evaluate(req dashboard.EvaluateRequest) (dashboard.EvaluateResponse, error) {
	if s.evaluateFn != nil {
		return s.evaluateFn(req)
	}
	return dashboard.EvaluateResponse{}, nil
}

type stubForecast struct {
	mu    sync.Mutex
	items []forecast.TrendingCity
	limit int
}

func (s *stubForecast) Load(context.Context, string) (forecast.Dataset, error) {
	return forecast.Dataset{}, errors.New("not used")
}

func (s *stubForecast) Reload(context.Context, string) (forecast.Dataset, error) {
	return forecast.Dataset{}, errors.New("not used")
}

func (s *stubForecast) Trending(_ context.Context, limit int) ([]forecast.TrendingCity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = limit
	return s.items, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
