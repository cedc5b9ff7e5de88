package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/weather-insights/internal/domain/insight"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	OpenMeteo OpenMeteoConfig `yaml:"openMeteo"`
	Cache     CacheConfig     `yaml:"cache"`
	Locations LocationsConfig `yaml:"locations"`
	Insight   insight.Options `yaml:"insight"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// OpenMeteoConfig points the upstream clients at the Open-Meteo APIs.
type OpenMeteoConfig struct {
	GeocodingURL  string        `yaml:"geocodingUrl"`
	ForecastURL   string        `yaml:"forecastUrl"`
	AirQualityURL string        `yaml:"airQualityUrl"`
	MarineURL     string        `yaml:"marineUrl"`
	Timeout       time.Duration `yaml:"timeout"`
}

// CacheConfig controls dataset caching and trending counters.
type CacheConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	TrendingLimit int           `yaml:"trendingLimit"`
	Valkey        ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// LocationsConfig selects where resolved geocoding results are kept.
type LocationsConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// DashboardConfig holds presentation defaults.
type DashboardConfig struct {
	DefaultCity     string        `yaml:"defaultCity"`
	DefaultUnit     string        `yaml:"defaultUnit"`
	RefreshInterval time.Duration `yaml:"refreshInterval"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("OPEN_METEO_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.OpenMeteo.Timeout = parsed
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("CACHE_TRENDING_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TrendingLimit = parsed
		}
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Cache.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Cache.Valkey.Addr = v
	}
	if v := os.Getenv("LOCATIONS_POSTGRES_DSN"); v != "" {
		cfg.Locations.Postgres.DSN = v
	}
	if v := os.Getenv("LOCATIONS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Locations.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("INSIGHT_ACCLIMATIZATION"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Insight.Acclimatization = parsed
		}
	}
	if v := os.Getenv("DASHBOARD_DEFAULT_CITY"); v != "" {
		cfg.Dashboard.DefaultCity = v
	}
	if v := os.Getenv("DASHBOARD_DEFAULT_UNIT"); v != "" {
		cfg.Dashboard.DefaultUnit = v
	}
	if v := os.Getenv("DASHBOARD_REFRESH_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Dashboard.RefreshInterval = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		OpenMeteo: OpenMeteoConfig{
			GeocodingURL:  "https://geocoding-api.open-meteo.com/v1/search",
			ForecastURL:   "https://api.open-meteo.com/v1/forecast",
			AirQualityURL: "https://air-quality-api.open-meteo.com/v1/air-quality",
			MarineURL:     "https://marine-api.open-meteo.com/v1/marine",
			Timeout:       10 * time.Second,
		},
		Cache: CacheConfig{
			TTL:           24 * time.Hour,
			TrendingLimit: 10,
			Valkey: ValkeyConfig{
				Prefix: "weather",
			},
		},
		Locations: LocationsConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Insight: insight.DefaultOptions(),
		Dashboard: DashboardConfig{
			DefaultCity:     "New Delhi",
			DefaultUnit:     string(insight.UnitMetric),
			RefreshInterval: time.Hour,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.OpenMeteo.ForecastURL == "" || c.OpenMeteo.GeocodingURL == "" || c.OpenMeteo.AirQualityURL == "" || c.OpenMeteo.MarineURL == "" {
		return errors.New("openMeteo urls cannot be empty")
	}
	if c.OpenMeteo.Timeout < 0 {
		return errors.New("openMeteo.timeout cannot be negative")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	if c.Cache.TrendingLimit <= 0 {
		return errors.New("cache.trendingLimit must be positive")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.Insight.Acclimatization < 0 {
		return errors.New("insight.acclimatization cannot be negative")
	}
	if strings.TrimSpace(c.Dashboard.DefaultCity) == "" {
		return errors.New("dashboard.defaultCity cannot be empty")
	}
	if _, err := insight.ParseUnit(c.Dashboard.DefaultUnit); err != nil {
		return fmt.Errorf("dashboard.defaultUnit: %w", err)
	}
	if c.Dashboard.RefreshInterval <= 0 {
		return errors.New("dashboard.refreshInterval must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
