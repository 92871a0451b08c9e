package symptoms

// ConditionSummary is the consumer-facing reduction of a Condition.
type ConditionSummary struct {
	Name        string `json:"name"`
	Probability int    `json:"probability"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Result is the display shape of an analysis.
type Result struct {
	Conditions      []ConditionSummary `json:"conditions"`
	Recommendations []string           `json:"recommendations"`
	Severity        string             `json:"severity"`
	Disclaimer      string             `json:"disclaimer"`
}

// Shape reduces enriched conditions to the display shape: lowercased
// severities, a merged recommendation list in first-seen order and the
// worst-case overall severity.
func Shape(conditions []Condition) Result {
	summaries := make([]ConditionSummary, 0, len(conditions))
	recommendations := []string{}
	seen := make(map[string]struct{})

	for _, c := range conditions {
		summaries = append(summaries, ConditionSummary{
			Name:        c.Name,
			Probability: c.Probability,
			Description: c.Description,
			Severity:    c.Severity.Lower(),
		})
		for _, r := range c.Recommendations {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			recommendations = append(recommendations, r)
		}
	}

	return Result{
		Conditions:      summaries,
		Recommendations: recommendations,
		Severity:        MaxSeverity(conditions).Lower(),
		Disclaimer:      Disclaimer,
	}
}
