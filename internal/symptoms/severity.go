package symptoms

import "strings"

// Severity is the triage tier attached to a condition.
type Severity string

const (
	Mild     Severity = "Mild"
	Moderate Severity = "Moderate"
	Severe   Severity = "Severe"
)

var severityRank = map[Severity]int{
	Mild:     1,
	Moderate: 2,
	Severe:   3,
}

// Rank orders severities (Severe > Moderate > Mild). Unknown values rank 0.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Valid reports whether s is one of the three known tiers.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

func (s Severity) Lower() string {
	return strings.ToLower(string(s))
}

// ParseSeverity accepts any casing of mild, moderate or severe.
func ParseSeverity(v string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "mild":
		return Mild, true
	case "moderate":
		return Moderate, true
	case "severe":
		return Severe, true
	}
	return "", false
}

// MaxSeverity returns the worst severity across conditions, Mild when empty.
func MaxSeverity(conditions []Condition) Severity {
	overall := Mild
	for _, c := range conditions {
		if c.Severity.Rank() > overall.Rank() {
			overall = c.Severity
		}
	}
	return overall
}
