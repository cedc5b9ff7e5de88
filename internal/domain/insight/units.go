package insight

import (
	"fmt"
	"strings"
)

// Unit selects how values are displayed. Thresholds are always evaluated in metric.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

const (
	mphPerKmh    = 0.621371
	feetPerMeter = 3.28084
	mmPerInch    = 25.4
)

// ParseUnit accepts "metric" or "imperial"; empty input means metric.
func ParseUnit(raw string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(raw))) {
	case "", UnitMetric:
		return UnitMetric, nil
	case UnitImperial:
		return UnitImperial, nil
	default:
		return "", fmt.Errorf("unknown unit %q", raw)
	}
}

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func KmhToMph(kmh float64) float64 { return kmh * mphPerKmh }

func MphToKmh(mph float64) float64 { return mph / mphPerKmh }

func MetersToFeet(m float64) float64 { return m * feetPerMeter }

func FeetToMeters(ft float64) float64 { return ft / feetPerMeter }

// TemperatureValue converts a Celsius value to the display unit.
func (u Unit) TemperatureValue(c float64) float64 {
	if u == UnitImperial {
		return CelsiusToFahrenheit(c)
	}
	return c
}

// SpeedValue converts a km/h value to the display unit.
func (u Unit) SpeedValue(kmh float64) float64 {
	if u == UnitImperial {
		return KmhToMph(kmh)
	}
	return kmh
}

// LengthValue converts a metre value to the display unit.
func (u Unit) LengthValue(m float64) float64 {
	if u == UnitImperial {
		return MetersToFeet(m)
	}
	return m
}

// PrecipitationValue converts a millimetre value to the display unit.
func (u Unit) PrecipitationValue(mm float64) float64 {
	if u == UnitImperial {
		return mm / mmPerInch
	}
	return mm
}

func (u Unit) TemperatureSymbol() string {
	if u == UnitImperial {
		return "°F"
	}
	return "°C"
}

func (u Unit) SpeedSymbol() string {
	if u == UnitImperial {
		return "mph"
	}
	return "km/h"
}

func (u Unit) LengthSymbol() string {
	if u == UnitImperial {
		return "ft"
	}
	return "m"
}

func (u Unit) PrecipitationSymbol() string {
	if u == UnitImperial {
		return "in"
	}
	return "mm"
}

// Temperature formats a Celsius value, e.g. "35.2°C" or "95.4°F".
func (u Unit) Temperature(c float64) string {
	return fmt.Sprintf("%.1f%s", u.TemperatureValue(c), u.TemperatureSymbol())
}

// TemperatureDelta formats a difference of two Celsius values.
func (u Unit) TemperatureDelta(dc float64) string {
	if u == UnitImperial {
		dc = dc * 9 / 5
	}
	return fmt.Sprintf("%.1f%s", dc, u.TemperatureSymbol())
}

// Speed formats a km/h value, e.g. "32.0 km/h".
func (u Unit) Speed(kmh float64) string {
	return fmt.Sprintf("%.1f %s", u.SpeedValue(kmh), u.SpeedSymbol())
}

// Length formats a metre value, e.g. "2.5 m".
func (u Unit) Length(m float64) string {
	return fmt.Sprintf("%.1f %s", u.LengthValue(m), u.LengthSymbol())
}
