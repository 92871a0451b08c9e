package symptoms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxSeverity(t *testing.T) {
	tests := []struct {
		name string
		in   []Severity
		want Severity
	}{
		{"empty defaults to mild", nil, Mild},
		{"all mild", []Severity{Mild, Mild}, Mild},
		{"moderate beats mild", []Severity{Mild, Moderate, Mild}, Moderate},
		{"severe beats all", []Severity{Moderate, Severe, Mild}, Severe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions := make([]Condition, 0, len(tt.in))
			for _, s := range tt.in {
				conditions = append(conditions, Condition{Severity: s})
			}
			assert.Equal(t, tt.want, MaxSeverity(conditions))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	s, ok := ParseSeverity(" SEVERE ")
	assert.True(t, ok)
	assert.Equal(t, Severe, s)

	s, ok = ParseSeverity("moderate")
	assert.True(t, ok)
	assert.Equal(t, Moderate, s)

	_, ok = ParseSeverity("critical")
	assert.False(t, ok)
}

func TestShapeMergesRecommendations(t *testing.T) {
	result := Shape([]Condition{
		{Name: "A", Probability: 50, Severity: Mild, Recommendations: []string{"rest", "fluids", EmergencyFooter}},
		{Name: "B", Probability: 25, Severity: Severe, Recommendations: []string{"fluids", "see a doctor", EmergencyFooter}},
	})

	assert.Equal(t, []string{"rest", "fluids", EmergencyFooter, "see a doctor"}, result.Recommendations)
	assert.Equal(t, "severe", result.Severity)
	assert.Equal(t, "mild", result.Conditions[0].Severity)
	assert.Equal(t, Disclaimer, result.Disclaimer)
}

func TestShapeEndToEndHeadacheFever(t *testing.T) {
	conditions, err := NewAnalyzer(nil).Analyze("headache, fever")
	require.NoError(t, err)
	result := Shape(conditions)

	union := map[string]bool{}
	for _, key := range []string{"headache", "fever"} {
		for _, e := range DefaultCatalog().Entries {
			if e.Key == key {
				for _, c := range e.Conditions {
					union[c] = true
				}
			}
		}
	}

	require.Len(t, result.Conditions, 3)
	for _, c := range result.Conditions {
		assert.True(t, union[c.Name], c.Name)
		assert.LessOrEqual(t, c.Probability, 85)
	}
	assert.Equal(t, "moderate", result.Severity)
	assert.Contains(t, result.Disclaimer, "102")
	assert.Contains(t, result.Disclaimer, "108")
	assert.Contains(t, result.Recommendations, EmergencyFooter)
}

func TestInputUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantEmpty bool
		wantText  string
	}{
		{"string", `{"symptoms":"headache, fever"}`, false, false, "headache, fever"},
		{"blank string", `{"symptoms":"   "}`, false, true, "   "},
		{"array", `{"symptoms":["chest pain","nausea"]}`, false, false, "chest pain, nausea"},
		{"empty array", `{"symptoms":[]}`, false, true, ""},
		{"blank entries", `{"symptoms":["", "  "]}`, false, false, ",   "},
		{"null", `{"symptoms":null}`, false, true, ""},
		{"missing", `{}`, false, true, ""},
		{"number", `{"symptoms":42}`, false, true, ""},
		{"object", `{"symptoms":{"text":"cough"}}`, false, true, ""},
		{"bool", `{"symptoms":true}`, false, true, ""},
		{"mixed array", `{"symptoms":["cough", 3, null, false]}`, false, false, "cough, 3, , false"},
		{"truncated", `{"symptoms":["cough"`, true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Symptoms Input `json:"symptoms"`
			}
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmpty, req.Symptoms.Empty())
			assert.Equal(t, tt.wantText, req.Symptoms.String())
		})
	}
}

func TestInputMarshalRoundTripsShape(t *testing.T) {
	b, err := json.Marshal(ListInput("cough", "rash"))
	require.NoError(t, err)
	assert.JSONEq(t, `["cough","rash"]`, string(b))

	b, err = json.Marshal(TextInput("cough"))
	require.NoError(t, err)
	assert.JSONEq(t, `"cough"`, string(b))
}
