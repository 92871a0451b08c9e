package symptoms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// MatchIncrement is added to a candidate for every matching symptom token.
	MatchIncrement = 25
	// ProbabilityCeiling caps displayed probability; keyword matching never claims certainty.
	ProbabilityCeiling = 85
	// TopN is the maximum number of conditions returned.
	TopN = 3

	FallbackConditionName = "General Health Concern"
	fallbackProbability   = 60
)

var ErrMalformedCatalog = errors.New("malformed symptom catalog")

// Candidate accumulates matches for one condition during a single Analyze call.
type Candidate struct {
	Name            string
	Probability     int
	Severity        Severity
	MatchedSymptoms []string
}

// Condition is an enriched, ranked condition. The JSON shape is also the
// contract for externally enhanced results.
type Condition struct {
	Name            string   `json:"name"`
	Probability     int      `json:"probability"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	Severity        Severity `json:"severity"`
	Recommendations []string `json:"recommendations"`
	WhenToSeekCare  string   `json:"whenToSeekCare"`
}

// Analyzer matches symptom text against a Catalog. It holds no mutable state
// and is safe for concurrent use.
type Analyzer struct {
	catalog *Catalog
}

func NewAnalyzer(catalog *Catalog) *Analyzer {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Analyzer{catalog: catalog}
}

// Normalize lowercases text, splits it on commas and newlines and drops blank segments.
func Normalize(text string) []string {
	out := []string{}
	for _, t := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		trimmed := strings.TrimSpace(t)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Match scores every catalog condition reachable from tokens. Candidates are
// returned in first-seen order. A token matches a key when either contains the other.
func (a *Analyzer) Match(tokens []string) ([]*Candidate, error) {
	byName := make(map[string]*Candidate)
	ordered := []*Candidate{}

	for _, token := range tokens {
		for _, entry := range a.catalog.Entries {
			if !strings.Contains(token, entry.Key) && !strings.Contains(entry.Key, token) {
				continue
			}
			if len(entry.Conditions) != len(entry.Severities) {
				return nil, fmt.Errorf("%w: %q is misaligned", ErrMalformedCatalog, entry.Key)
			}
			for i, name := range entry.Conditions {
				c, ok := byName[name]
				if !ok {
					c = &Candidate{Name: name}
					byName[name] = c
					ordered = append(ordered, c)
				}
				c.Probability += MatchIncrement
				c.MatchedSymptoms = append(c.MatchedSymptoms, token)
				// last write wins when a condition sits under several keys
				c.Severity = entry.Severities[i]
			}
		}
	}

	return ordered, nil
}

// Analyze returns at most TopN enriched conditions for text, or the single
// fallback condition when nothing matched.
func (a *Analyzer) Analyze(text string) ([]Condition, error) {
	tokens := Normalize(text)
	candidates, err := a.Match(tokens)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []Condition{fallbackCondition(tokens)}, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Probability > candidates[j].Probability
	})
	if len(candidates) > TopN {
		candidates = candidates[:TopN]
	}

	out := make([]Condition, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, a.enrich(c))
	}
	return out, nil
}

func (a *Analyzer) enrich(c *Candidate) Condition {
	return Condition{
		Name:            c.Name,
		Probability:     min(c.Probability, ProbabilityCeiling),
		Description:     a.catalog.description(c.Name),
		Symptoms:        a.catalog.typicalSymptoms(c.Name),
		Severity:        c.Severity,
		Recommendations: a.catalog.recommendations(c.Name, c.Severity),
		WhenToSeekCare:  a.catalog.whenToSeekCare(c.Severity),
	}
}

func fallbackCondition(tokens []string) Condition {
	return Condition{
		Name:        FallbackConditionName,
		Probability: fallbackProbability,
		Description: "Your symptoms suggest a condition that would benefit from professional medical evaluation.",
		Symptoms:    append([]string{}, tokens...),
		Severity:    Moderate,
		Recommendations: []string{
			"Schedule an appointment with a healthcare provider",
			"Keep track of when symptoms occur and their severity",
			"Stay hydrated and get adequate rest",
			"Avoid self-medication without professional guidance",
			EmergencyFooter,
		},
		WhenToSeekCare: "As soon as possible for proper diagnosis and treatment",
	}
}
