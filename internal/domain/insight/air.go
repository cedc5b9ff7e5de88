package insight

import (
	"fmt"
	"math"
	"strings"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

// AQITodayWindow is today in the 48 point air quality series.
var AQITodayWindow = forecast.Window{Start: 0, End: 24}

// AQICategory is a US AQI band with its presentation colors.
type AQICategory struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	TitleColor string `json:"titleColor"`
}

// Ordered high to low; lower bounds are inclusive.
var aqiBands = []struct {
	floor    int
	category AQICategory
}{
	{301, AQICategory{Label: "Hazardous", Color: "#7e0023", TitleColor: "#4f0016"}},
	{201, AQICategory{Label: "Very Unhealthy", Color: "#990099", TitleColor: "#3d003d"}},
	{151, AQICategory{Label: "Unhealthy", Color: "#ff3333", TitleColor: "#661313"}},
	{101, AQICategory{Label: "Unhealthy for Sensitive Groups", Color: "#ff9933", TitleColor: "#663d13"}},
	{51, AQICategory{Label: "Moderate", Color: "#ffcc00", TitleColor: "#665200"}},
	{0, AQICategory{Label: "Good", Color: "#00cc66", TitleColor: "#004d26"}},
}

// AQICategoryFor returns the band containing aqi.
func AQICategoryFor(aqi int) AQICategory {
	for _, band := range aqiBands {
		if aqi >= band.floor {
			return band.category
		}
	}
	return aqiBands[len(aqiBands)-1].category
}

var aqiRules = []Rule[int]{
	aqiRule(301, "AQI **%d** is **EXTREMELY DANGEROUS** with a severe health risk to everyone.",
		"**CRITICAL: AVOID ALL OUTDOOR ACTIVITY**. Stay indoors and run air filtration."),
	aqiRule(201, "AQI **%d** is a **SIGNIFICANT HEALTH RISK**.",
		"**SENSITIVE GROUPS AVOID EXERTION**. Everyone else should limit long periods outside."),
	aqiRule(151, "AQI **%d** is **UNHEALTHY**. Lung and heart effects are likely.",
		"**AVOID EXERTION**: Sensitive groups **must** stay indoors and others should limit activity."),
	aqiRule(101, "AQI **%d** may aggravate respiratory conditions.",
		"**CAUTION**: Sensitive people should limit long outdoor activity and keep medication nearby."),
	aqiRule(51, "AQI **%d** is generally acceptable.",
		"**MONITOR**: Unusually sensitive people may want to ease off a little."),
	aqiRule(0, "AQI **%d** is satisfactory.",
		"**GO OUTSIDE**: Air quality is excellent."),
}

func aqiRule(floor int, message, action string) Rule[int] {
	category := AQICategoryFor(floor)
	rule := Rule[int]{
		Level:       strings.ToUpper(category.Label),
		Message:     func(v int) string { return fmt.Sprintf(message, v) },
		Action:      text[int](action),
		RiskColor:   category.Color,
		AdviceColor: category.TitleColor,
	}
	if floor > 0 {
		rule.When = func(v int) bool { return v >= floor }
	}
	return rule
}

// AirQuality classifies today's mean US AQI.
func AirQuality(aqi forecast.Series) Report {
	mean, ok := forecast.Mean(aqi.Slice(AQITodayWindow).Valid())
	if !ok {
		return unavailable("Air quality data is unavailable.", noAdvice)
	}
	return Evaluate(aqiRules, int(math.Round(mean)))
}
