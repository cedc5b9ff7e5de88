package insight

// Condition is a coarse sky state derived from a WMO weather code.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionSnowy        Condition = "snowy"
	ConditionShowers      Condition = "showers"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionHazy         Condition = "hazy"
)

// ConditionFor maps a WMO weather code.
func ConditionFor(code int) Condition {
	switch {
	case code >= 0 && code <= 1:
		return ConditionClear
	case code >= 2 && code <= 48:
		return ConditionCloudy
	case code >= 51 && code <= 67:
		return ConditionRainy
	case code >= 71 && code <= 77:
		return ConditionSnowy
	case code >= 80 && code <= 82:
		return ConditionShowers
	case code >= 95 && code <= 99:
		return ConditionThunderstorm
	default:
		return ConditionHazy
	}
}
