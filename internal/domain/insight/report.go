package insight

// Unavailable is the risk level of a report built from missing or insufficient data.
const Unavailable = "N/A"

const (
	neutralColor = "gray"
	noAdvice     = "No specific advice."
)

// Report is the result of one evaluator.
type Report struct {
	RiskLevel   string `json:"riskLevel"`
	Message     string `json:"message"`
	Action      string `json:"action"`
	RiskColor   string `json:"riskColor"`
	AdviceColor string `json:"adviceColor"`
}

// Available reports whether the evaluator had enough data to classify.
func (r Report) Available() bool {
	return r.RiskLevel != Unavailable
}

func unavailable(message, action string) Report {
	return Report{
		RiskLevel:   Unavailable,
		Message:     message,
		Action:      action,
		RiskColor:   neutralColor,
		AdviceColor: neutralColor,
	}
}
