// Package enhance asks a text-generation provider to refine a local symptom analysis.
package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/symptoms"
	"github.com/Skufu/aidoc/internal/textgen"
)

const systemPrompt = `You are a medical AI assistant for Indian healthcare.
- Always include a medical disclaimer with Indian emergency numbers (102/108).
- Consider common conditions in Indian context.
- Provide specific, actionable recommendations.
Return STRICT JSON with:
{
  "disclaimer": "text",
  "possibleConditions": [
    {
      "name": "string",
      "probability": number,
      "description": "string",
      "symptoms": ["..."],
      "severity": "Mild|Moderate|Severe",
      "recommendations": ["..."],
      "whenToSeekCare": "string"
    }
  ]
}`

// Client implements symptoms.Enhancer on top of a textgen.Generator.
type Client struct {
	gen    textgen.Generator
	logger *zap.Logger
}

func New(gen textgen.Generator, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{gen: gen, logger: logger.Named("enhance")}
}

type wireCondition struct {
	Name            string   `json:"name"`
	Probability     float64  `json:"probability"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
	WhenToSeekCare  string   `json:"whenToSeekCare"`
}

type wireEnhancement struct {
	Disclaimer         string          `json:"disclaimer"`
	PossibleConditions []wireCondition `json:"possibleConditions"`
}

func (c *Client) Enhance(ctx context.Context, req symptoms.EnhanceRequest) (*symptoms.Enhancement, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	text, err := c.gen.Generate(ctx, textgen.Request{System: systemPrompt, Prompt: prompt})
	if err != nil {
		if errors.Is(err, textgen.ErrEmptyCompletion) {
			return nil, fmt.Errorf("%s: %w", c.gen.Name(), symptoms.ErrEmptyEnhancement)
		}
		return nil, fmt.Errorf("%s: %w", c.gen.Name(), err)
	}

	out, err := Parse(text)
	if err != nil {
		c.logger.Debug("discarding provider output", zap.String("provider", c.gen.Name()), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func buildPrompt(req symptoms.EnhanceRequest) (string, error) {
	local, err := json.Marshal(req.Local)
	if err != nil {
		return "", fmt.Errorf("marshal local analysis: %w", err)
	}
	return fmt.Sprintf("Enhance this symptom analysis for an Indian patient.\n\nSymptoms: %s\nInitial Local Analysis: %s\n", req.Symptoms, local), nil
}

// Parse turns provider text into a normalised Enhancement. Output that is not
// schema-conformant JSON wraps symptoms.ErrMalformedEnhancement; a valid
// document without conditions wraps symptoms.ErrEmptyEnhancement.
func Parse(text string) (*symptoms.Enhancement, error) {
	doc := []byte(stripFences(text))
	if !json.Valid(doc) {
		return nil, fmt.Errorf("%w: not json", symptoms.ErrMalformedEnhancement)
	}

	violations, err := validate(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", symptoms.ErrMalformedEnhancement, err)
	}
	if len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", symptoms.ErrMalformedEnhancement, strings.Join(violations, "; "))
	}

	var wire wireEnhancement
	if err := json.Unmarshal(doc, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", symptoms.ErrMalformedEnhancement, err)
	}
	if len(wire.PossibleConditions) == 0 {
		return nil, symptoms.ErrEmptyEnhancement
	}

	conditions := make([]symptoms.Condition, 0, len(wire.PossibleConditions))
	for _, w := range wire.PossibleConditions {
		conditions = append(conditions, normalize(w))
	}
	sort.SliceStable(conditions, func(i, j int) bool {
		return conditions[i].Probability > conditions[j].Probability
	})
	if len(conditions) > symptoms.TopN {
		conditions = conditions[:symptoms.TopN]
	}

	return &symptoms.Enhancement{
		Disclaimer: strings.TrimSpace(wire.Disclaimer),
		Conditions: conditions,
	}, nil
}

func normalize(w wireCondition) symptoms.Condition {
	severity, _ := symptoms.ParseSeverity(w.Severity)

	// clamp before converting; huge floats overflow int
	p := math.Min(math.Max(math.Round(w.Probability), 0), symptoms.ProbabilityCeiling)
	probability := int(p)

	recommendations := append([]string(nil), w.Recommendations...)
	if !mentionsEmergencyNumbers(recommendations) {
		recommendations = append(recommendations, symptoms.EmergencyFooter)
	}

	return symptoms.Condition{
		Name:            strings.TrimSpace(w.Name),
		Probability:     probability,
		Description:     w.Description,
		Symptoms:        w.Symptoms,
		Severity:        severity,
		Recommendations: recommendations,
		WhenToSeekCare:  w.WhenToSeekCare,
	}
}

func mentionsEmergencyNumbers(lines []string) bool {
	for _, l := range lines {
		if strings.Contains(l, "102") && strings.Contains(l, "108") {
			return true
		}
	}
	return false
}

// stripFences removes a surrounding markdown code fence, with or without a language tag.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	} else {
		t = ""
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
