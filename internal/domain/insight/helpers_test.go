package insight

import "github.com/yanqian/weather-insights/internal/domain/forecast"

// hours72 builds a 72 point series holding v inside w and nil elsewhere.
func hours72(w forecast.Window, v float64) forecast.Series {
	s := make(forecast.Series, 72)
	for i := w.Start; i < w.End && i < len(s); i++ {
		s[i] = forecast.Float(v)
	}
	return s
}

func missing(n int) forecast.Series {
	return make(forecast.Series, n)
}

func repeat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
