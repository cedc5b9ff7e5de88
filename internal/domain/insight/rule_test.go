package insight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateFirstMatchWins(t *testing.T) {
	rules := []Rule[int]{
		{Level: "HIGH", When: func(v int) bool { return v >= 10 }, Message: text[int]("high"), RiskColor: "red"},
		{Level: "MID", When: func(v int) bool { return v >= 5 }, Message: text[int]("mid")},
		{Level: "LOW", Message: text[int]("low")},
	}

	require.Equal(t, "HIGH", Evaluate(rules, 12).RiskLevel)
	require.Equal(t, "red", Evaluate(rules, 10).RiskColor)
	require.Equal(t, "MID", Evaluate(rules, 5).RiskLevel)
	require.Equal(t, "LOW", Evaluate(rules, -3).RiskLevel)
	require.Empty(t, Evaluate(rules, -3).Action)
}

func TestEvaluateWithoutCatchAllIsUnavailable(t *testing.T) {
	rules := []Rule[int]{
		{Level: "ONLY", When: func(v int) bool { return v > 0 }},
	}

	report := Evaluate(rules, 0)
	require.False(t, report.Available())
	require.Equal(t, Unavailable, report.RiskLevel)
	require.Equal(t, "gray", report.RiskColor)
	require.Equal(t, "gray", report.AdviceColor)
}
