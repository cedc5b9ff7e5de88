package forecast

import "math"

// Series is an hourly or daily sequence of samples. A nil element marks a missing sample.
type Series []*float64

// Window is a half-open index range [Start, End).
type Window struct {
	Start int
	End   int
}

// Values builds a Series with every sample present.
func Values(vs ...float64) Series {
	out := make(Series, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// At returns the sample at i when it exists and is finite.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s) || s[i] == nil {
		return 0, false
	}
	v := *s[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Slice returns the part of s inside w, clamped to the series bounds.
func (s Series) Slice(w Window) Series {
	start, end := w.Start, w.End
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return nil
	}
	return s[start:end]
}

// Valid drops missing and non-finite samples.
func (s Series) Valid() []float64 {
	out := make([]float64, 0, len(s))
	for i := range s {
		if v, ok := s.At(i); ok {
			out = append(out, v)
		}
	}
	return out
}

// Max reports the largest value, or false for an empty input.
func Max(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi, true
}

// Min reports the smallest value, or false for an empty input.
func Min(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	lo := values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo, true
}

// Mean reports the arithmetic mean, or false for an empty input.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return Sum(values) / float64(len(values)), true
}

// Sum adds all values.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
