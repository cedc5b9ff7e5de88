package insight

import (
	"fmt"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

// Marine thresholds, metres and °C.
const (
	RoughWaveM    = 3.0
	ModerateWaveM = 2.0
	ColdWaterC    = 15.0
	WarmWaterC    = 25.0
)

type marineStats struct {
	unit    Unit
	maxWave float64
	avgSST  float64
}

func marineMessage(s marineStats) string {
	return fmt.Sprintf("Max wave height **%s**, average sea temperature **%s**.", s.unit.Length(s.maxWave), s.unit.Temperature(s.avgSST))
}

var marineRules = []Rule[marineStats]{
	{
		Level:       "ROUGH SEAS",
		When:        func(s marineStats) bool { return s.maxWave >= RoughWaveM },
		Message:     marineMessage,
		Action:      text[marineStats]("**STAY ASHORE**: Swimming and small craft are unsafe."),
		RiskColor:   "#FF4500",
		AdviceColor: "#FF4500",
	},
	{
		Level:       "MODERATE WAVES",
		When:        func(s marineStats) bool { return s.maxWave >= ModerateWaveM },
		Message:     marineMessage,
		Action:      text[marineStats]("**USE CAUTION**: Experienced swimmers and surfers only. Watch for rip currents."),
		RiskColor:   "#FFC107",
		AdviceColor: "#FFC107",
	},
	{
		Level:       "COLD WATER",
		When:        func(s marineStats) bool { return s.avgSST < ColdWaterC },
		Message:     marineMessage,
		Action:      text[marineStats]("**COLD SHOCK RISK**: Wear a wetsuit and limit time in the water."),
		RiskColor:   "#1E90FF",
		AdviceColor: "#1E90FF",
	},
	{
		Level:       "WARM WATER",
		When:        func(s marineStats) bool { return s.avgSST > WarmWaterC },
		Message:     marineMessage,
		Action:      text[marineStats]("**GREAT FOR SWIMMING**: Warm water and manageable waves. Keep hydrated in the sun."),
		RiskColor:   "#4CAF50",
		AdviceColor: "#4CAF50",
	},
	{
		Level:       "CALM SEAS",
		Message:     marineMessage,
		Action:      text[marineStats]("**PLEASANT CONDITIONS**: Good for swimming and boating."),
		RiskColor:   "#00CED1",
		AdviceColor: "#00CED1",
	},
}

// Marine classifies today's wave height and sea surface temperature.
func Marine(wave, sst forecast.Series, unit Unit) Report {
	maxWave, ok1 := forecast.Max(wave.Slice(TodayWindow).Valid())
	avgSST, ok2 := forecast.Mean(sst.Slice(TodayWindow).Valid())
	if !ok1 || !ok2 {
		return unavailable("Marine data is unavailable for this location.", noAdvice)
	}
	return Evaluate(marineRules, marineStats{unit: unit, maxWave: maxWave, avgSST: avgSST})
}
