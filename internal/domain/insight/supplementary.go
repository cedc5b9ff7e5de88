package insight

import (
	"fmt"
	"math"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

// Solar scale, W/m².
const (
	SolarMaxWm2    = 1000.0
	SolarHighWm2   = 600.0
	SolarMediumWm2 = 300.0
)

type groundStats struct {
	unit  Unit
	avg   float64
	swing float64
	opts  Options
}

func (s groundStats) diff() float64 { return s.avg - s.opts.NormalTempC }
func (s groundStats) swingDiff() float64 { return s.swing - s.opts.NormalSwingC }

func groundMessage(comparison string) func(groundStats) string {
	return func(s groundStats) string {
		return fmt.Sprintf("Average temperature **%s** (normal %s), daily swing %s (normal %s). %s",
			s.unit.Temperature(s.avg), s.unit.Temperature(s.opts.NormalTempC),
			s.unit.TemperatureDelta(s.swing), s.unit.TemperatureDelta(s.opts.NormalSwingC), comparison)
	}
}

var groundRules = []Rule[groundStats]{
	{
		Level:       "HEAT ADVISORY",
		When:        func(s groundStats) bool { return s.diff() > 2 },
		Message:     groundMessage("Significantly **warmer** than the historical average."),
		Action:      text[groundStats]("**Heat Advisory**: Stay hydrated, limit sun exposure and move outdoor plans to early morning."),
		RiskColor:   "#FF8C00",
		AdviceColor: "#FF8C00",
	},
	{
		Level:       "COOL WEATHER ALERT",
		When:        func(s groundStats) bool { return s.diff() < -2 },
		Message:     groundMessage("Noticeably **cooler** than the historical average."),
		Action:      text[groundStats]("**Cool Weather Alert**: Dress in layers, especially after sundown."),
		RiskColor:   "#1E90FF",
		AdviceColor: "#1E90FF",
	},
	{
		Level:       "WIDE SWING",
		When:        func(s groundStats) bool { return s.swingDiff() > 2 },
		Message:     groundMessage("The **temperature swing is wider** than normal."),
		Action:      text[groundStats]("**Wide Swing**: Mornings and afternoons will feel very different. Pack layers."),
		RiskColor:   "#FFC107",
		AdviceColor: "#FFC107",
	},
	{
		Level:       "NARROW SWING",
		When:        func(s groundStats) bool { return s.swingDiff() < -2 },
		Message:     groundMessage("The **temperature swing is narrower** than normal, a sign of humidity or persistent cloud."),
		Action:      text[groundStats]("**Narrow Swing**: Expect steady temperatures that may feel warmer than the air reading."),
		RiskColor:   "#FFC107",
		AdviceColor: "#4CAF50",
	},
	{
		Level:       "NEAR NORMAL",
		Message:     groundMessage("Tracking **near the historical average**."),
		Action:      text[groundStats]("No action needed beyond general comfort planning."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
}

// GroundTemperature compares today's mean temperature and swing with the normals.
func GroundTemperature(temps forecast.Series, unit Unit, opts Options) Report {
	today := temps.Slice(TodayWindow).Valid()
	avg, ok := forecast.Mean(today)
	if !ok {
		return unavailable("Temperature data is unavailable.", noAdvice)
	}
	hi, _ := forecast.Max(today)
	lo, _ := forecast.Min(today)
	return Evaluate(groundRules, groundStats{unit: unit, avg: avg, swing: hi - lo, opts: opts.WithDefaults()})
}

type humidityStats struct {
	avg    float64
	normal float64
}

func humidityMessage(comparison string) func(humidityStats) string {
	return func(s humidityStats) string {
		return fmt.Sprintf("Average relative humidity **%.1f%%** (normal %.0f%%). %s", s.avg, s.normal, comparison)
	}
}

var humidityRules = []Rule[humidityStats]{
	{
		Level:       "HIGH HUMIDITY ALERT",
		When:        func(s humidityStats) bool { return s.avg-s.normal > 10 },
		Message:     humidityMessage("Significantly **higher** than normal."),
		Action:      text[humidityStats]("**High Humidity Alert**: The air will feel heavy. Take breaks, stay cool and watch for mold indoors."),
		RiskColor:   "#1E90FF",
		AdviceColor: "#1E90FF",
	},
	{
		Level:       "LOW HUMIDITY WARNING",
		When:        func(s humidityStats) bool { return s.avg-s.normal < -10 },
		Message:     humidityMessage("Noticeably **lower** than normal."),
		Action:      text[humidityStats]("**Low Humidity Warning**: Dry air raises the risk of dehydration and dry skin. Drink water and moisturize."),
		RiskColor:   "#FFC107",
		AdviceColor: "#FFC107",
	},
	{
		Level:       "COMFORTABLE HUMIDITY",
		Message:     humidityMessage("Tracking **near the historical average**."),
		Action:      text[humidityStats]("Humidity is moderate."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
}

// Humidity compares today's mean relative humidity with the normal.
func Humidity(rh forecast.Series, opts Options) Report {
	avg, ok := forecast.Mean(rh.Slice(TodayWindow).Valid())
	if !ok {
		return unavailable("Moisture data is unavailable.", noAdvice)
	}
	return Evaluate(humidityRules, humidityStats{avg: avg, normal: opts.WithDefaults().NormalHumidityPct})
}

func solarMessage(peak float64) string {
	position := math.Min(math.Max(peak, 0), SolarMaxWm2) / SolarMaxWm2 * 100
	return fmt.Sprintf("Today's direct radiation peaks at **%.0f W/m²**, %.0f%% of the %.0f W/m² scale.", peak, position, SolarMaxWm2)
}

var solarRules = []Rule[float64]{
	{
		Level:       "LOW / SCATTERED CLOUDS",
		When:        func(v float64) bool { return v < SolarMediumWm2 },
		Message:     solarMessage,
		Action:      text[float64]("Solar output will be limited."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
	{
		Level:       "MEDIUM / PARTIAL SUN",
		When:        func(v float64) bool { return v < SolarHighWm2 },
		Message:     solarMessage,
		Action:      text[float64]("Expect intermittent sun and moderate solar output."),
		RiskColor:   "#FFEB3B",
		AdviceColor: "#FFEB3B",
	},
	{
		Level:       "HIGH / FULL SUN POTENTIAL",
		Message:     solarMessage,
		Action:      text[float64]("Strong sun for solar panels and concentrators. Protect skin outdoors."),
		RiskColor:   "#FF5722",
		AdviceColor: "#FF5722",
	},
}

// Solar classifies today's peak direct radiation.
func Solar(direct forecast.Series) Report {
	peak, ok := forecast.Max(direct.Slice(TodayWindow).Valid())
	if !ok {
		return unavailable("Solar radiation data is unavailable.", noAdvice)
	}
	if peak < 0 {
		peak = 0
	}
	return Evaluate(solarRules, peak)
}

var cloudRules = []Rule[float64]{
	{
		Level:       "OVERCAST",
		When:        func(v float64) bool { return v > 80 },
		Message:     cloudMessage,
		Action:      text[float64]("**OVERCAST WARNING**: A gray day with low light. Solar generation will drop sharply."),
		RiskColor:   "#9E9E9E",
		AdviceColor: "#9E9E9E",
	},
	{
		Level:       "PARTLY CLOUDY",
		When:        func(v float64) bool { return v > 50 },
		Message:     cloudMessage,
		Action:      text[float64]("**PARTLY CLOUDY**: Sun and shade alternate. Use sun protection during clear spells."),
		RiskColor:   "#B0BEC5",
		AdviceColor: "#4CAF50",
	},
	{
		Level:       "CLEAR SKY",
		Message:     cloudMessage,
		Action:      text[float64]("**CLEAR SKY**: Little cloud expected, so radiation and UV exposure will be high."),
		RiskColor:   "#FFD700",
		AdviceColor: "#FF8C00",
	},
}

func cloudMessage(avg float64) string {
	return fmt.Sprintf("Average cloud cover today is **%.1f%%**.", avg)
}

// CloudCover classifies today's mean cloud cover percentage.
func CloudCover(cloud forecast.Series) Report {
	avg, ok := forecast.Mean(cloud.Slice(TodayWindow).Valid())
	if !ok {
		return unavailable("Cloud cover data is unavailable.", noAdvice)
	}
	return Evaluate(cloudRules, avg)
}

// Peak is the highest sample of today and the hour it occurs.
type Peak struct {
	Value float64 `json:"value"`
	Time  string  `json:"time"`
}

// PeakToday finds the first maximum in hours 24 to 47.
func PeakToday(values forecast.Series, times []string) (Peak, bool) {
	var (
		peak  Peak
		found bool
	)
	for i := TodayWindow.Start; i < TodayWindow.End; i++ {
		v, ok := values.At(i)
		if !ok || (found && v <= peak.Value) {
			continue
		}
		peak.Value = v
		peak.Time = ""
		if i < len(times) {
			peak.Time = times[i]
		}
		found = true
	}
	return peak, found
}
