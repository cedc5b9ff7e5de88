package insight

// Rule is one row of a threshold table. A nil When matches every input.
type Rule[T any] struct {
	Level       string
	When        func(T) bool
	Message     func(T) string
	Action      func(T) string
	RiskColor   string
	AdviceColor string
}

// Evaluate scans rules top to bottom and renders the first row that matches in.
func Evaluate[T any](rules []Rule[T], in T) Report {
	for _, rule := range rules {
		if rule.When != nil && !rule.When(in) {
			continue
		}
		return Report{
			RiskLevel:   rule.Level,
			Message:     render(rule.Message, in),
			Action:      render(rule.Action, in),
			RiskColor:   rule.RiskColor,
			AdviceColor: rule.AdviceColor,
		}
	}
	return unavailable("No classification matched the data.", noAdvice)
}

func render[T any](fn func(T) string, in T) string {
	if fn == nil {
		return ""
	}
	return fn(in)
}

func text[T any](s string) func(T) string {
	return func(T) string { return s }
}
