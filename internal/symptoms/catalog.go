package symptoms

import "fmt"

const (
	// EmergencyFooter closes every recommendation list.
	EmergencyFooter = "For emergencies, call 102 (Ambulance) or 108 (Emergency Services)"

	Disclaimer = "This analysis is for informational purposes only and should not replace professional medical advice. For emergencies, call 102 (Ambulance) or 108 (Emergency Services)."

	defaultDescription = "A medical condition that requires professional evaluation."
	defaultCareAdvice  = "Consult healthcare professional for proper evaluation"
)

var defaultTypicalSymptoms = []string{"various symptoms", "discomfort", "general malaise"}

var baseRecommendations = []string{
	"Monitor your symptoms closely",
	"Stay hydrated and get adequate rest",
	"Maintain a healthy diet",
}

// Entry maps one canonical symptom phrase to its correlated conditions.
// Conditions[i] carries Severities[i].
type Entry struct {
	Key        string
	Conditions []string
	Severities []Severity
}

// Catalog holds the read-only lookup tables used by the Analyzer.
// Entries is a slice so that matching order (and therefore tie-breaking) is stable.
type Catalog struct {
	Entries         []Entry
	Descriptions    map[string]string
	TypicalSymptoms map[string][]string
	SeverityAdvice  map[Severity][]string
	ConditionAdvice map[string][]string
	CareAdvice      map[Severity]string
}

// Validate checks that every entry has aligned conditions and severities.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: catalog is nil", ErrMalformedCatalog)
	}
	seen := make(map[string]struct{}, len(c.Entries))
	for _, e := range c.Entries {
		if err := e.validate(); err != nil {
			return err
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrMalformedCatalog, e.Key)
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}

func (e Entry) validate() error {
	if e.Key == "" {
		return fmt.Errorf("%w: empty key", ErrMalformedCatalog)
	}
	if len(e.Conditions) != len(e.Severities) {
		return fmt.Errorf("%w: %q has %d conditions and %d severities",
			ErrMalformedCatalog, e.Key, len(e.Conditions), len(e.Severities))
	}
	for _, s := range e.Severities {
		if !s.Valid() {
			return fmt.Errorf("%w: %q has unknown severity %q", ErrMalformedCatalog, e.Key, s)
		}
	}
	return nil
}

func (c *Catalog) description(name string) string {
	if d, ok := c.Descriptions[name]; ok {
		return d
	}
	return defaultDescription
}

func (c *Catalog) typicalSymptoms(name string) []string {
	if s, ok := c.TypicalSymptoms[name]; ok {
		return append([]string(nil), s...)
	}
	return append([]string(nil), defaultTypicalSymptoms...)
}

func (c *Catalog) recommendations(name string, severity Severity) []string {
	out := make([]string, 0, len(baseRecommendations)+8)
	out = append(out, baseRecommendations...)
	out = append(out, c.SeverityAdvice[severity]...)
	out = append(out, c.ConditionAdvice[name]...)
	return append(out, EmergencyFooter)
}

func (c *Catalog) whenToSeekCare(severity Severity) string {
	if a, ok := c.CareAdvice[severity]; ok {
		return a
	}
	return defaultCareAdvice
}

// DefaultCatalog returns the built-in symptom tables. Each call returns a fresh copy.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Entries: []Entry{
			// respiratory
			{Key: "cough", Conditions: []string{"Common Cold", "Bronchitis", "Pneumonia", "Asthma"}, Severities: []Severity{Mild, Moderate, Severe, Moderate}},
			{Key: "runny nose", Conditions: []string{"Common Cold", "Allergic Rhinitis", "Sinusitis"}, Severities: []Severity{Mild, Mild, Moderate}},
			{Key: "sore throat", Conditions: []string{"Viral Pharyngitis", "Strep Throat", "Tonsillitis"}, Severities: []Severity{Mild, Moderate, Moderate}},
			{Key: "shortness of breath", Conditions: []string{"Asthma", "Pneumonia", "Heart Disease", "Anxiety"}, Severities: []Severity{Moderate, Severe, Severe, Mild}},

			// gastrointestinal
			{Key: "stomach pain", Conditions: []string{"Gastritis", "Food Poisoning", "Appendicitis", "IBS"}, Severities: []Severity{Moderate, Moderate, Severe, Mild}},
			{Key: "nausea", Conditions: []string{"Food Poisoning", "Gastroenteritis", "Pregnancy", "Migraine"}, Severities: []Severity{Moderate, Moderate, Mild, Moderate}},
			{Key: "diarrhea", Conditions: []string{"Gastroenteritis", "Food Poisoning", "IBS", "Infection"}, Severities: []Severity{Moderate, Moderate, Mild, Moderate}},
			{Key: "vomiting", Conditions: []string{"Food Poisoning", "Gastroenteritis", "Migraine", "Appendicitis"}, Severities: []Severity{Moderate, Moderate, Moderate, Severe}},

			// neurological
			{Key: "headache", Conditions: []string{"Tension Headache", "Migraine", "Sinusitis", "Hypertension"}, Severities: []Severity{Mild, Moderate, Moderate, Moderate}},
			{Key: "dizziness", Conditions: []string{"Vertigo", "Low Blood Pressure", "Dehydration", "Inner Ear Infection"}, Severities: []Severity{Moderate, Mild, Mild, Moderate}},
			{Key: "fatigue", Conditions: []string{"Anemia", "Thyroid Disorder", "Depression", "Sleep Disorder"}, Severities: []Severity{Moderate, Moderate, Mild, Mild}},

			// musculoskeletal
			{Key: "joint pain", Conditions: []string{"Arthritis", "Rheumatoid Arthritis", "Gout", "Injury"}, Severities: []Severity{Moderate, Severe, Severe, Moderate}},
			{Key: "back pain", Conditions: []string{"Muscle Strain", "Herniated Disc", "Sciatica", "Arthritis"}, Severities: []Severity{Mild, Severe, Moderate, Moderate}},
			{Key: "muscle pain", Conditions: []string{"Muscle Strain", "Fibromyalgia", "Viral Infection", "Overuse"}, Severities: []Severity{Mild, Moderate, Mild, Mild}},

			// skin
			{Key: "rash", Conditions: []string{"Allergic Reaction", "Eczema", "Contact Dermatitis", "Viral Rash"}, Severities: []Severity{Moderate, Mild, Mild, Mild}},
			{Key: "itching", Conditions: []string{"Allergic Reaction", "Dry Skin", "Eczema", "Insect Bite"}, Severities: []Severity{Moderate, Mild, Mild, Mild}},

			// cardiovascular
			{Key: "chest pain", Conditions: []string{"Heart Attack", "Angina", "Acid Reflux", "Muscle Strain"}, Severities: []Severity{Severe, Severe, Mild, Mild}},
			{Key: "palpitations", Conditions: []string{"Anxiety", "Arrhythmia", "Hyperthyroidism", "Caffeine Excess"}, Severities: []Severity{Mild, Moderate, Moderate, Mild}},

			// general
			{Key: "fever", Conditions: []string{"Viral Infection", "Bacterial Infection", "Flu", "COVID-19"}, Severities: []Severity{Moderate, Moderate, Moderate, Moderate}},
			{Key: "chills", Conditions: []string{"Flu", "Bacterial Infection", "Malaria", "Sepsis"}, Severities: []Severity{Moderate, Moderate, Severe, Severe}},
		},
		Descriptions: map[string]string{
			"Common Cold":       "A viral infection of the upper respiratory tract, typically mild and self-limiting.",
			"Bronchitis":        "Inflammation of the bronchial tubes, often following a cold or respiratory infection.",
			"Pneumonia":         "Infection that inflames air sacs in one or both lungs, which may fill with fluid.",
			"Asthma":            "A respiratory condition where airways narrow and swell, producing extra mucus.",
			"Allergic Rhinitis": "An allergic response causing runny nose, sneezing, and congestion.",
			"Sinusitis":         "Inflammation or swelling of the tissue lining the sinuses.",
			"Viral Pharyngitis": "Inflammation of the throat caused by viral infection.",
			"Strep Throat":      "Bacterial infection causing severe throat pain and inflammation.",
			"Tonsillitis":       "Inflammation of the tonsils, usually due to viral or bacterial infection.",
			"Gastritis":         "Inflammation of the stomach lining, often causing pain and nausea.",
			"Food Poisoning":    "Illness caused by consuming contaminated food or beverages.",
			"Appendicitis":      "Inflammation of the appendix, requiring immediate medical attention.",
			"IBS":               "Irritable Bowel Syndrome - a common disorder affecting the large intestine.",
			"Gastroenteritis":   "Inflammation of the stomach and intestines, often called stomach flu.",
			"Tension Headache":  "Most common type of headache, often stress-related.",
			"Migraine":          "Severe headache often accompanied by nausea and light sensitivity.",
			"Hypertension":      "High blood pressure, often called the silent killer.",
			"Vertigo":           "Sensation of spinning or dizziness, often related to inner ear problems.",
			"Anemia":            "Condition where blood lacks enough healthy red blood cells.",
			"Arthritis":         "Inflammation of joints causing pain and stiffness.",
			"Heart Attack":      "Serious medical emergency requiring immediate treatment.",
			"Viral Infection":   "Infection caused by viruses, often self-limiting.",
			"Flu":               "Influenza - a respiratory illness caused by influenza viruses.",
		},
		TypicalSymptoms: map[string][]string{
			"Common Cold":      {"runny nose", "sneezing", "mild cough", "sore throat", "low-grade fever"},
			"Bronchitis":       {"persistent cough", "mucus production", "chest discomfort", "fatigue"},
			"Pneumonia":        {"high fever", "chills", "cough with phlegm", "shortness of breath", "chest pain"},
			"Asthma":           {"wheezing", "shortness of breath", "chest tightness", "coughing"},
			"Gastritis":        {"stomach pain", "nausea", "bloating", "loss of appetite"},
			"Food Poisoning":   {"nausea", "vomiting", "diarrhea", "stomach cramps", "fever"},
			"Migraine":         {"severe headache", "nausea", "light sensitivity", "sound sensitivity"},
			"Tension Headache": {"dull headache", "pressure around head", "neck stiffness"},
			"Arthritis":        {"joint pain", "stiffness", "swelling", "reduced range of motion"},
			"Heart Attack":     {"chest pain", "shortness of breath", "nausea", "sweating", "arm pain"},
		},
		SeverityAdvice: map[Severity][]string{
			Mild: {
				"Rest and home care may be sufficient",
				"Over-the-counter medications may help",
				"Consult a doctor if symptoms worsen",
			},
			Moderate: {
				"Schedule an appointment with your doctor",
				"Follow prescribed treatment plans",
				"Monitor symptoms and report changes",
			},
			Severe: {
				"Seek immediate medical attention",
				"Do not delay treatment",
				"Call emergency services if symptoms worsen rapidly",
			},
		},
		ConditionAdvice: map[string][]string{
			"Heart Attack":   {"Call 102 immediately", "Chew aspirin if not allergic", "Do not drive yourself"},
			"Appendicitis":   {"Seek emergency care immediately", "Do not eat or drink", "Do not take pain medications"},
			"Asthma":         {"Use prescribed inhaler", "Avoid known triggers", "Keep rescue medications handy"},
			"Food Poisoning": {"Stay hydrated with clear fluids", "Avoid solid foods initially", "Use ORS solution"},
		},
		CareAdvice: map[Severity]string{
			Mild:     "If symptoms persist for more than 3-5 days or worsen significantly",
			Moderate: "Within 24-48 hours, or sooner if symptoms worsen",
			Severe:   "Immediately - do not delay seeking medical care",
		},
	}
}
