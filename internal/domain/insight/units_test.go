package insight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("")
	require.NoError(t, err)
	require.Equal(t, UnitMetric, u)

	u, err = ParseUnit(" Imperial ")
	require.NoError(t, err)
	require.Equal(t, UnitImperial, u)

	_, err = ParseUnit("kelvin")
	require.Error(t, err)
}

func TestConversionsRoundTrip(t *testing.T) {
	for _, v := range []float64{-40, -3.3, 0, 12.7, 28.5, 41, 100} {
		require.InDelta(t, v, FahrenheitToCelsius(CelsiusToFahrenheit(v)), 0.1)
		require.InDelta(t, v, MphToKmh(KmhToMph(v)), 0.1)
		require.InDelta(t, v, FeetToMeters(MetersToFeet(v)), 0.1)
	}
	require.Equal(t, 212.0, CelsiusToFahrenheit(100))
	require.InDelta(t, 31.07, KmhToMph(50), 0.01)
}

func TestDisplayFormatting(t *testing.T) {
	require.Equal(t, "35.2°C", UnitMetric.Temperature(35.2))
	require.Equal(t, "95.0°F", UnitImperial.Temperature(35))
	require.Equal(t, "32.0 km/h", UnitMetric.Speed(32))
	require.Equal(t, "31.1 mph", UnitImperial.Speed(50))
	require.Equal(t, "2.5 m", UnitMetric.Length(2.5))
	require.Equal(t, "8.2 ft", UnitImperial.Length(2.5))
	require.Equal(t, "16.2°F", UnitImperial.TemperatureDelta(9))
}
