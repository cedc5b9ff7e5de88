package dashboard

import (
	"time"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/domain/insight"
)

// Config holds the dashboard defaults.
type Config struct {
	DefaultCity     string
	DefaultUnit     insight.Unit
	Options         insight.Options
	RefreshInterval time.Duration
}

// Request selects a city and display unit. Empty fields use the configured defaults.
type Request struct {
	City string `form:"city" json:"city"`
	Unit string `form:"unit" json:"unit"`
	// Refresh marks a scheduled rebuild, which is not counted as a search.
	Refresh bool `form:"-" json:"-"`
}

// Response is the presentation model of one dashboard render.
type Response struct {
	Location      forecast.Location `json:"location"`
	Unit          insight.Unit      `json:"unit"`
	Condition     insight.Condition `json:"condition"`
	CurrentHour   string            `json:"currentHour,omitempty"`
	IsDaytime     bool              `json:"isDaytime"`
	Insights      insight.Summary   `json:"insights"`
	Marine        insight.Report    `json:"marine"`
	Supplementary Supplementary     `json:"supplementary"`
	Cards         []Card            `json:"cards"`
	Forecast      []DayForecast     `json:"forecast"`
	FetchedAt     time.Time         `json:"fetchedAt"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}

// Supplementary holds the secondary insights shown beside the charts.
type Supplementary struct {
	Temperature     insight.Report `json:"temperature"`
	TemperaturePeak *insight.Peak  `json:"temperaturePeak,omitempty"`
	Humidity        insight.Report `json:"humidity"`
	Solar           insight.Report `json:"solar"`
	CloudCover      insight.Report `json:"cloudCover"`
	WindHazard      insight.Report `json:"windHazard"`
}

// Severity drives the highlight of a data card.
type Severity string

const (
	SeverityExtreme  Severity = "extreme"
	SeverityHigh     Severity = "high"
	SeverityElevated Severity = "elevated"
	SeverityCool     Severity = "cool"
	SeverityLight    Severity = "light"
	SeverityNormal   Severity = "normal"
)

// Card is one headline number.
type Card struct {
	Title    string   `json:"title"`
	Value    string   `json:"value"`
	Unit     string   `json:"unit,omitempty"`
	Extra    string   `json:"extra"`
	Severity Severity `json:"severity"`
	Color    string   `json:"color,omitempty"`
}

// DayForecast is one day of the ten day outlook, in display units.
type DayForecast struct {
	Date        string            `json:"date"`
	Weekday     string            `json:"weekday,omitempty"`
	TempMax     *float64          `json:"tempMax,omitempty"`
	TempMin     *float64          `json:"tempMin,omitempty"`
	HumidityMax *float64          `json:"humidityMax,omitempty"`
	Condition   insight.Condition `json:"condition"`
}

// EvaluateRequest runs the insight engine over caller supplied series.
type EvaluateRequest struct {
	Unit    string           `json:"unit"`
	Dataset forecast.Dataset `json:"dataset"`
	Options *insight.Options `json:"options,omitempty"`
}

// EvaluateResponse is the headline summary plus the marine report.
type EvaluateResponse struct {
	Unit    insight.Unit    `json:"unit"`
	Summary insight.Summary `json:"summary"`
	Marine  insight.Report  `json:"marine"`
}
