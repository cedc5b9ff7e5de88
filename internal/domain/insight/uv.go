package insight

import (
	"fmt"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

var uvRules = []Rule[float64]{
	{
		Level:       "EXTREME RISK",
		When:        func(uv float64) bool { return uv >= 11 },
		Message:     uvMessage("Unprotected skin can burn within minutes."),
		Action:      text[float64]("**AVOID THE SUN** between 10:00 and 16:00. Cover up fully and use SPF 50+."),
		RiskColor:   "red",
		AdviceColor: "red",
	},
	{
		Level:       "VERY HIGH RISK",
		When:        func(uv float64) bool { return uv >= 8 },
		Message:     uvMessage("Skin and eye damage can happen quickly."),
		Action:      text[float64]("**MINIMIZE EXPOSURE** at midday. Wear a hat and sunglasses and reapply SPF 30+."),
		RiskColor:   "#FF8C00",
		AdviceColor: "#FF8C00",
	},
	{
		Level:       "HIGH RISK",
		When:        func(uv float64) bool { return uv >= 6 },
		Message:     uvMessage("Protection is needed against skin and eye damage."),
		Action:      text[float64]("**PROTECT YOURSELF**: Seek shade near midday and apply sunscreen."),
		RiskColor:   "#FFC107",
		AdviceColor: "#FFC107",
	},
	{
		Level:       "MODERATE RISK",
		When:        func(uv float64) bool { return uv >= 3 },
		Message:     uvMessage("Some risk from unprotected exposure."),
		Action:      text[float64]("**TAKE PRECAUTIONS**: Stay in shade around noon and use sunscreen if outside for long."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
	{
		Level:       "LOW RISK",
		Message:     uvMessage("Minimal danger for the average person."),
		Action:      text[float64]("**ENJOY**: Sunglasses are enough on bright days."),
		RiskColor:   "#1E90FF",
		AdviceColor: "#1E90FF",
	},
}

func uvMessage(tail string) func(float64) string {
	return func(uv float64) string {
		return fmt.Sprintf("Peak UV Index is **%.1f**. %s", uv, tail)
	}
}

// UV classifies today's maximum UV index, the first element of the daily series.
func UV(dailyMax forecast.Series) Report {
	uv, ok := dailyMax.At(0)
	if !ok {
		return unavailable("UV Index data is unavailable.", noAdvice)
	}
	return Evaluate(uvRules, uv)
}
