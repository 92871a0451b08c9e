package risk

import "strings"

const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
)

type Interaction struct {
	Drug1           string `json:"drug1"`
	Drug2           string `json:"drug2"`
	InteractionType string `json:"interaction_type"`
	Severity        string `json:"severity"`
	Description     string `json:"description"`
}

// DefaultInteractions is the seeded interaction table.
func DefaultInteractions() []Interaction {
	return []Interaction{
		{"Aspirin", "Warfarin", "Anticoagulant", SeverityHigh, "Increased bleeding risk"},
		{"Metformin", "Alcohol", "Metabolic", SeverityMedium, "Risk of lactic acidosis"},
		{"Paracetamol", "Alcohol", "Hepatotoxic", SeverityMedium, "Liver damage risk"},
		{"Ibuprofen", "ACE Inhibitors", "Renal", SeverityMedium, "Kidney function impairment"},
		{"Digoxin", "Diuretics", "Electrolyte", SeverityHigh, "Digitalis toxicity risk"},
	}
}

type pair struct{ a, b string }

func pairKey(x, y string) pair {
	x = strings.ToLower(strings.TrimSpace(x))
	y = strings.ToLower(strings.TrimSpace(y))
	if x > y {
		x, y = y, x
	}
	return pair{x, y}
}

// Checker looks up pairwise interactions. It is read-only after construction.
type Checker struct {
	table map[pair]Interaction
}

// NewChecker indexes interactions; nil uses DefaultInteractions.
func NewChecker(interactions []Interaction) *Checker {
	if interactions == nil {
		interactions = DefaultInteractions()
	}
	c := &Checker{table: make(map[pair]Interaction, len(interactions))}
	for _, i := range interactions {
		c.table[pairKey(i.Drug1, i.Drug2)] = i
	}
	return c
}

// Check returns every known interaction between distinct pairs of medications,
// in the order the pairs appear.
func (c *Checker) Check(medications []string) []Interaction {
	out := []Interaction{}
	for i, m1 := range medications {
		for _, m2 := range medications[i+1:] {
			if found, ok := c.table[pairKey(m1, m2)]; ok {
				out = append(out, found)
			}
		}
	}
	return out
}
