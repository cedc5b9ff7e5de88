package insight

import (
	"fmt"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

// Wind thresholds, km/h.
const (
	DefaultNormalWindKmh = 15.0
	WindComfortKmh       = 15.0
	WindAdvisoryKmh      = 30.0
	WindDangerKmh        = 50.0
)

// TodayWindow is hours 24 to 47 of a 72 point series.
var TodayWindow = forecast.Window{Start: 24, End: 48}

// UpcomingWindow is the 24 hours starting at the current hour index.
func UpcomingWindow(current int) forecast.Window {
	if current < 0 {
		current = 0
	}
	return forecast.Window{Start: current, End: current + 24}
}

type windAverageStats struct {
	unit   Unit
	avg    float64
	normal float64
}

func (s windAverageStats) diff() float64 { return s.avg - s.normal }

var windAverageRules = []Rule[windAverageStats]{
	{
		Level: "STRONG WIND ADVISORY",
		When:  func(s windAverageStats) bool { return s.diff() > 15 },
		Message: func(s windAverageStats) string {
			return fmt.Sprintf("Average wind of **%s** is well above the normal %s.", s.unit.Speed(s.avg), s.unit.Speed(s.normal))
		},
		Action:      text[windAverageStats]("**SECURE OUTDOOR ITEMS**: Expect gusts and take care on exposed routes."),
		RiskColor:   "#FF8C00",
		AdviceColor: "#FF8C00",
	},
	{
		Level: "STAGNANT AIR ALERT",
		When:  func(s windAverageStats) bool { return s.diff() < -5 },
		Message: func(s windAverageStats) string {
			return fmt.Sprintf("Average wind of **%s** is well below the normal %s.", s.unit.Speed(s.avg), s.unit.Speed(s.normal))
		},
		Action:      text[windAverageStats]("**LOW DISPERSION**: Pollutants may build up near the ground. Check the AQI before exercising outside."),
		RiskColor:   "#FFC107",
		AdviceColor: "#1E90FF",
	},
	{
		Level: "IDEAL CONDITIONS",
		Message: func(s windAverageStats) string {
			return fmt.Sprintf("Average wind of **%s** is close to the normal %s.", s.unit.Speed(s.avg), s.unit.Speed(s.normal))
		},
		Action:      text[windAverageStats]("**GOOD VENTILATION**: Wind is keeping the air fresh."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
}

// WindAverage compares the mean wind speed in w against a normal baseline.
// A non-positive normalKmh selects DefaultNormalWindKmh.
func WindAverage(speeds forecast.Series, w forecast.Window, unit Unit, normalKmh float64) Report {
	avg, ok := forecast.Mean(speeds.Slice(w).Valid())
	if !ok {
		return unavailable("Wind data is unavailable.", noAdvice)
	}
	if normalKmh <= 0 {
		normalKmh = DefaultNormalWindKmh
	}
	return Evaluate(windAverageRules, windAverageStats{unit: unit, avg: avg, normal: normalKmh})
}

type windMaxStats struct {
	unit Unit
	peak float64
}

func windMaxMessage(tail string) func(windMaxStats) string {
	return func(s windMaxStats) string {
		return fmt.Sprintf("Max Wind Speed: **%s**. %s", s.unit.Speed(s.peak), tail)
	}
}

var windHazardRules = []Rule[windMaxStats]{
	{
		Level:       "HIGH WIND HAZARD",
		When:        func(s windMaxStats) bool { return s.peak >= WindDangerKmh },
		Message:     windMaxMessage("**Walking will be very difficult**."),
		Action:      text[windMaxStats]("**SAFETY FIRST**: **Postpone non-essential outdoor plans** and tie down loose objects."),
		RiskColor:   "red",
		AdviceColor: "red",
	},
	{
		Level:       "STRONG BREEZE ADVISORY",
		When:        func(s windMaxStats) bool { return s.peak >= WindAdvisoryKmh },
		Message:     windMaxMessage("Conditions are **uncomfortable for stationary activities** such as outdoor dining."),
		Action:      text[windMaxStats]("**PLAN AROUND IT**: Good for wind sports, bad for drones. Walking into the wind takes effort."),
		RiskColor:   "#FF8C00",
		AdviceColor: "#FF8C00",
	},
	{
		Level:       "MODERATE BREEZE",
		When:        func(s windMaxStats) bool { return s.peak >= WindComfortKmh },
		Message:     windMaxMessage("Air is moving steadily."),
		Action:      text[windMaxStats]("**ACTIVITY OPTIMAL**: Pleasant for walking and cycling with a cooling effect."),
		RiskColor:   "#FFC107",
		AdviceColor: "#4CAF50",
	},
	{
		Level:       "CALM/LIGHT AIR",
		Message:     windMaxMessage("Air is still."),
		Action:      text[windMaxStats]("**CALM CONDITIONS**: Fine for sitting outside. **Watch the AQI**, pollutants disperse poorly."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#1E90FF",
	},
}

// WindHazard classifies the maximum wind speed in w.
func WindHazard(speeds forecast.Series, w forecast.Window, unit Unit) Report {
	peak, ok := forecast.Max(speeds.Slice(w).Valid())
	if !ok {
		return unavailable("Wind data is unavailable.", noAdvice)
	}
	return Evaluate(windHazardRules, windMaxStats{unit: unit, peak: peak})
}
