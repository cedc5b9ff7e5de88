package insight

import (
	"fmt"
	"math"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

// Comfort thresholds, °C and kPa.
const (
	DangerHeatIndexC    = 41.0
	ModerateHeatIndexC  = 32.0
	OppressiveDewPointC = 21.0
	MuggyDewPointC      = 16.0
	DryDewPointC        = 10.0
	HighVPDKPa          = 2.0
)

// AfternoonWindow covers today 06:00 to 17:00 in a 72 point series.
var AfternoonWindow = forecast.Window{Start: 30, End: 42}

// ComfortInput carries the series the comfort evaluator reads.
type ComfortInput struct {
	ApparentTemperature forecast.Series
	DewPoint            forecast.Series
	Temperature         forecast.Series
	VPD                 forecast.Series
	// Acclimatization is added to the mean dew point before classification.
	Acclimatization float64
}

type comfortStats struct {
	unit        Unit
	maxApparent float64
	avgDewPoint float64
	rawDewPoint float64
	maxTemp     float64
	maxVPD      float64
}

var comfortRules = []Rule[comfortStats]{
	{
		Level: "DANGER",
		When:  func(s comfortStats) bool { return s.maxApparent >= DangerHeatIndexC },
		Message: func(s comfortStats) string {
			return fmt.Sprintf(`The "Feels Like" peak reaches **%s**. Heat stroke is possible.`, s.unit.Temperature(s.maxApparent))
		},
		Action:      text[comfortStats]("**CRITICAL WARNING**: **Avoid all exertion** and direct sun. Move to air conditioning and keep drinking water."),
		RiskColor:   "red",
		AdviceColor: "red",
	},
	{
		Level: "HIGH HEAT STRESS",
		When:  func(s comfortStats) bool { return s.maxApparent >= ModerateHeatIndexC },
		Message: func(s comfortStats) string {
			return fmt.Sprintf(`The "Feels Like" peak reaches **%s**. A dew point of %s slows sweat evaporation.`,
				s.unit.Temperature(s.maxApparent), s.unit.Temperature(s.rawDewPoint))
		},
		Action:      text[comfortStats]("**HEAT ADVISORY**: Cut back exertion in the hottest hours. Rest in the shade often and keep hydrating."),
		RiskColor:   "#FF8C00",
		AdviceColor: "#FF8C00",
	},
	{
		Level: "OPPRESSIVE",
		When:  func(s comfortStats) bool { return s.avgDewPoint >= OppressiveDewPointC },
		Message: func(s comfortStats) string {
			return fmt.Sprintf("The air is saturated (Dew Point: **%s**). Fog or mist may reduce visibility.", s.unit.Temperature(s.rawDewPoint))
		},
		Action:      text[comfortStats]("**MOLD RISK**: Moist air aggravates asthma and mold growth. Run AC or a dehumidifier indoors and expect a sticky feel outside."),
		RiskColor:   "#FF8C00",
		AdviceColor: "#1E90FF",
	},
	{
		Level: "MUGGY/STICKY",
		When:  func(s comfortStats) bool { return s.avgDewPoint >= MuggyDewPointC },
		Message: func(s comfortStats) string {
			return fmt.Sprintf("Moisture in the air (Dew Point: **%s**) makes it feel sticky.", s.unit.Temperature(s.rawDewPoint))
		},
		Action:      text[comfortStats]("**GENERAL CAUTION**: Light activity is fine but expect some fatigue. Dew or fog may form overnight."),
		RiskColor:   "#FFC107",
		AdviceColor: "#4CAF50",
	},
	{
		Level: "IDEAL COMFORT",
		When:  func(s comfortStats) bool { return s.avgDewPoint >= DryDewPointC },
		Message: func(s comfortStats) string {
			return fmt.Sprintf("A pleasant day. Air temperature peaks at %s with comfortable moisture (**%s**).",
				s.unit.Temperature(s.maxTemp), s.unit.Temperature(s.rawDewPoint))
		},
		Action:      text[comfortStats]("**OPTIMAL DAY**: Enjoy the outdoors with the usual sun protection and water."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
	{
		Level: "VERY DRY",
		When:  func(s comfortStats) bool { return s.maxVPD > HighVPDKPa },
		Message: func(s comfortStats) string {
			return fmt.Sprintf("The air is very dry (Dew Point: **%s**). Air temperature peaks at %s.",
				s.unit.Temperature(s.rawDewPoint), s.unit.Temperature(s.maxTemp))
		},
		Action: func(s comfortStats) string {
			return fmt.Sprintf("**DEHYDRATION/VPD RISK**: A vapor pressure deficit of %.1f kPa pulls moisture from skin and soil. **Drink more water now** and irrigate plants.", s.maxVPD)
		},
		RiskColor:   "#FF8C00",
		AdviceColor: "#FF8C00",
	},
	{
		Level: "VERY DRY",
		Message: func(s comfortStats) string {
			return fmt.Sprintf("The air is very dry (Dew Point: **%s**). Air temperature peaks at %s.",
				s.unit.Temperature(s.rawDewPoint), s.unit.Temperature(s.maxTemp))
		},
		Action:      text[comfortStats]("**DRY AIR**: Expect dry skin and irritated sinuses. Use moisturizer and keep water at hand."),
		RiskColor:   "#FFC107",
		AdviceColor: "#FFC107",
	},
}

// Comfort classifies today's afternoon heat and moisture.
func Comfort(in ComfortInput, unit Unit) Report {
	apparent := in.ApparentTemperature.Slice(AfternoonWindow).Valid()
	dewPoint := in.DewPoint.Slice(AfternoonWindow).Valid()
	temps := in.Temperature.Slice(AfternoonWindow).Valid()
	vpd := in.VPD.Slice(AfternoonWindow).Valid()

	maxApparent, ok1 := forecast.Max(apparent)
	avgDewPoint, ok2 := forecast.Mean(dewPoint)
	maxTemp, ok3 := forecast.Max(temps)
	maxVPD, ok4 := forecast.Max(vpd)
	if !(ok1 && ok2 && ok3 && ok4) {
		return unavailable("Insufficient temperature and humidity data for a comfort analysis.", noAdvice)
	}

	stats := comfortStats{
		unit:        unit,
		maxApparent: maxApparent,
		avgDewPoint: avgDewPoint + in.Acclimatization,
		rawDewPoint: avgDewPoint,
		maxTemp:     maxTemp,
		maxVPD:      maxVPD,
	}
	if !finite(stats.maxApparent, stats.avgDewPoint, stats.maxTemp, stats.maxVPD) {
		return unavailable("Insufficient temperature and humidity data for a comfort analysis.", noAdvice)
	}
	return Evaluate(comfortRules, stats)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
