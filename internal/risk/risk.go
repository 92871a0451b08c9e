// Package risk scores cardiovascular and lifestyle risk and flags known drug interactions.
package risk

import (
	"math"
	"time"
)

const (
	defaultAge         = 30
	defaultBMI         = 25
	defaultSystolic    = 120
	defaultDiastolic   = 80
	defaultCholesterol = 200

	HighInteractionAdvice = "Consult doctor immediately about high-severity drug interactions"
)

// Component weights of the total score.
const (
	weightAge         = 0.2
	weightBMI         = 0.15
	weightBP          = 0.25
	weightCholesterol = 0.15
	weightLifestyle   = 0.15
	weightFamily      = 0.1
)

var generalAdvice = []string{
	"Maintain regular physical activity (150 minutes/week)",
	"Follow a balanced diet rich in fruits and vegetables",
	"Ensure adequate sleep (7-9 hours per night)",
	"Manage stress through relaxation techniques",
}

// Patient is the assessment input. Nil numeric fields take population defaults.
type Patient struct {
	Age                *float64 `json:"age"`
	BMI                *float64 `json:"bmi"`
	Systolic           *float64 `json:"bp_systolic"`
	Diastolic          *float64 `json:"bp_diastolic"`
	Cholesterol        *float64 `json:"cholesterol"`
	Smoking            bool     `json:"smoking"`
	Diabetes           bool     `json:"diabetes"`
	FamilyHistory      []string `json:"family_history"`
	CurrentMedications []string `json:"current_medications"`
}

type Factors struct {
	Age           float64 `json:"age_risk"`
	BMI           float64 `json:"bmi_risk"`
	BloodPressure float64 `json:"blood_pressure_risk"`
	Cholesterol   float64 `json:"cholesterol_risk"`
	Lifestyle     float64 `json:"lifestyle_risk"`
	FamilyHistory float64 `json:"family_history_risk"`
}

type Assessment struct {
	TotalRiskScore  float64  `json:"total_risk_score"`
	RiskLevel       string   `json:"risk_level"`
	RiskFactors     Factors  `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
}

type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

type Report struct {
	ReportDate       time.Time       `json:"report_date"`
	RiskAssessment   Assessment      `json:"risk_assessment"`
	DrugInteractions []Interaction   `json:"drug_interactions"`
	Recommendations  Recommendations `json:"recommendations"`
}

type resolved struct {
	age, bmi, systolic, diastolic, cholesterol float64
	smoking, diabetes                          bool
	familyHistory                              int
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func (p Patient) resolve() resolved {
	return resolved{
		age:           valueOr(p.Age, defaultAge),
		bmi:           valueOr(p.BMI, defaultBMI),
		systolic:      valueOr(p.Systolic, defaultSystolic),
		diastolic:     valueOr(p.Diastolic, defaultDiastolic),
		cholesterol:   valueOr(p.Cholesterol, defaultCholesterol),
		smoking:       p.Smoking,
		diabetes:      p.Diabetes,
		familyHistory: len(p.FamilyHistory),
	}
}

// Assess computes the weighted risk score for p.
func Assess(p Patient) Assessment {
	r := p.resolve()

	var f Factors
	if r.age > 20 {
		f.Age = math.Min((r.age-20)/60*100, 100)
	}

	switch {
	case r.bmi > 30:
		f.BMI = 40
	case r.bmi > 25:
		f.BMI = 20
	}

	switch {
	case r.systolic > 140 || r.diastolic > 90:
		f.BloodPressure = 50
	case r.systolic > 130 || r.diastolic > 85:
		f.BloodPressure = 25
	}

	if r.cholesterol > 200 {
		f.Cholesterol = (r.cholesterol - 200) / 100 * 30
	}

	if r.smoking {
		f.Lifestyle += 30
	}
	if r.diabetes {
		f.Lifestyle += 25
	}

	f.FamilyHistory = float64(r.familyHistory * 10)

	total := f.Age*weightAge +
		f.BMI*weightBMI +
		f.BloodPressure*weightBP +
		f.Cholesterol*weightCholesterol +
		f.Lifestyle*weightLifestyle +
		f.FamilyHistory*weightFamily

	return Assessment{
		TotalRiskScore: round2(total),
		RiskLevel:      Level(total),
		RiskFactors: Factors{
			Age:           round2(f.Age),
			BMI:           round2(f.BMI),
			BloodPressure: round2(f.BloodPressure),
			Cholesterol:   round2(f.Cholesterol),
			Lifestyle:     round2(f.Lifestyle),
			FamilyHistory: round2(f.FamilyHistory),
		},
		Recommendations: recommendations(total, r),
	}
}

// Level buckets a total score.
func Level(score float64) string {
	switch {
	case score > 70:
		return "Very High"
	case score > 50:
		return "High"
	case score > 30:
		return "Moderate"
	}
	return "Low"
}

func recommendations(score float64, r resolved) []string {
	out := []string{}
	if score > 50 {
		out = append(out,
			"Consult with a healthcare provider immediately",
			"Consider comprehensive health screening",
		)
	}
	if r.bmi > 25 {
		out = append(out, "Focus on weight management through diet and exercise")
	}
	if r.systolic > 130 {
		out = append(out, "Monitor blood pressure regularly and reduce sodium intake")
	}
	if r.cholesterol > 200 {
		out = append(out, "Follow a heart-healthy diet low in saturated fats")
	}
	if r.smoking {
		out = append(out, "Quit smoking - consider nicotine replacement therapy")
	}
	if r.age > 40 {
		out = append(out, "Schedule regular preventive health checkups")
	}
	return append(out, generalAdvice...)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Report combines the risk assessment with a drug interaction check.
func (c *Checker) Report(p Patient, now time.Time) Report {
	assessment := Assess(p)
	interactions := c.Check(p.CurrentMedications)

	immediate := []string{}
	for _, i := range interactions {
		if i.Severity == SeverityHigh {
			immediate = append(immediate, HighInteractionAdvice)
			break
		}
	}

	return Report{
		ReportDate:       now.UTC(),
		RiskAssessment:   assessment,
		DrugInteractions: interactions,
		Recommendations: Recommendations{
			Immediate: immediate,
			ShortTerm: []string{},
			LongTerm:  assessment.Recommendations,
		},
	}
}
