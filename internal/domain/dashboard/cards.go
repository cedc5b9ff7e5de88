package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
	"github.com/yanqian/weather-insights/internal/domain/insight"
)

func buildCards(ds forecast.Dataset, unit insight.Unit, condition insight.Condition) []Card {
	var (
		hourly forecast.Hourly
		daily  forecast.Daily
		air    forecast.AirQuality
	)
	if ds.Hourly != nil {
		hourly = *ds.Hourly
	}
	if ds.Daily != nil {
		daily = *ds.Daily
	}
	if ds.AirQuality != nil {
		air = *ds.AirQuality
	}
	today := insight.TodayWindow

	cards := make([]Card, 0, 10)

	if v, ok := daily.TemperatureMax.At(0); ok {
		cards = append(cards, Card{Title: "Max Temp", Value: oneDecimal(unit.TemperatureValue(v)), Unit: unit.TemperatureSymbol(), Extra: "Peak today", Severity: temperatureSeverity(v)})
	}
	if v, ok := daily.TemperatureMin.At(0); ok {
		cards = append(cards, Card{Title: "Min Temp", Value: oneDecimal(unit.TemperatureValue(v)), Unit: unit.TemperatureSymbol(), Extra: "Lowest today", Severity: SeverityNormal})
	}
	if v, ok := forecast.Mean(hourly.RelativeHumidity.Slice(today).Valid()); ok {
		cards = append(cards, Card{Title: "Humidity", Value: oneDecimal(v), Unit: "%", Extra: "Average RH today", Severity: SeverityNormal})
	}
	if v, ok := forecast.Mean(hourly.DewPoint.Slice(today).Valid()); ok {
		cards = append(cards, Card{Title: "Dew Point", Value: oneDecimal(unit.TemperatureValue(v)), Unit: unit.TemperatureSymbol(), Extra: "Absolute moisture level", Severity: dewPointSeverity(v)})
	}
	if v, ok := forecast.Mean(hourly.VPD.Slice(today).Valid()); ok {
		cards = append(cards, Card{Title: "VPD", Value: fmt.Sprintf("%.2f", v), Unit: "kPa", Extra: "Plant stress indicator", Severity: SeverityNormal})
	}
	if v, ok := forecast.Mean(hourly.WindSpeed10m.Slice(today).Valid()); ok {
		cards = append(cards, Card{Title: "Wind Speed", Value: oneDecimal(unit.SpeedValue(v)), Unit: unit.SpeedSymbol(), Extra: "Average today", Severity: windSeverity(v)})
	}
	if v, ok := daily.UVIndexMax.At(0); ok {
		cards = append(cards, Card{Title: "Max UV", Value: fmt.Sprintf("%.0f", v), Extra: "Peak UV Index", Severity: uvSeverity(v)})
	}
	if v, ok := forecast.Mean(air.USAQI.Slice(insight.AQITodayWindow).Valid()); ok {
		aqi := int(math.Round(v))
		category := insight.AQICategoryFor(aqi)
		severity := SeverityNormal
		if aqi >= 101 {
			severity = SeverityHigh
		}
		cards = append(cards, Card{Title: "US AQI", Value: fmt.Sprintf("%d", aqi), Extra: "Air quality: " + category.Label, Severity: severity, Color: category.Color})
	}
	if precip := hourly.Precipitation.Slice(today).Valid(); len(precip) > 0 {
		total := forecast.Sum(precip)
		cards = append(cards, Card{Title: "Precipitation", Value: oneDecimal(unit.PrecipitationValue(total)), Unit: unit.PrecipitationSymbol(), Extra: "Total expected today", Severity: precipitationSeverity(total)})
	}
	if condition != "" {
		cards = append(cards, Card{Title: "Condition", Value: titleCase(string(condition)), Extra: "Current weather summary", Severity: SeverityNormal})
	}
	return cards
}

func temperatureSeverity(c float64) Severity {
	switch {
	case c >= 38:
		return SeverityExtreme
	case c >= 32:
		return SeverityHigh
	case c <= 10:
		return SeverityCool
	default:
		return SeverityNormal
	}
}

func dewPointSeverity(c float64) Severity {
	switch {
	case c >= insight.OppressiveDewPointC:
		return SeverityHigh
	case c >= insight.MuggyDewPointC:
		return SeverityElevated
	case c <= insight.DryDewPointC:
		return SeverityCool
	default:
		return SeverityNormal
	}
}

func windSeverity(kmh float64) Severity {
	switch {
	case kmh >= insight.WindDangerKmh:
		return SeverityExtreme
	case kmh >= insight.WindAdvisoryKmh:
		return SeverityHigh
	default:
		return SeverityNormal
	}
}

func uvSeverity(uv float64) Severity {
	switch {
	case uv >= 8:
		return SeverityExtreme
	case uv >= 6:
		return SeverityHigh
	default:
		return SeverityNormal
	}
}

func precipitationSeverity(mm float64) Severity {
	switch {
	case mm > 5:
		return SeverityHigh
	case mm > 0:
		return SeverityLight
	default:
		return SeverityNormal
	}
}

func oneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
