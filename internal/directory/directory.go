// Package directory serves the doctor, specialty and hospital listings.
package directory

import (
	"context"
	"strings"
)

type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Qualification   string   `json:"qualification"`
	Experience      string   `json:"experience"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	Location        string   `json:"location"`
	Hospital        string   `json:"hospital"`
	ConsultationFee string   `json:"consultationFee"`
	Availability    string   `json:"availability"`
	Languages       []string `json:"languages"`
	Image           string   `json:"image"`
	Phone           string   `json:"phone"`
	GoogleURL       string   `json:"googleUrl"`
}

type Specialty struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Hospital struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Image     string `json:"image"`
	GoogleURL string `json:"googleUrl"`
}

// Filter narrows a doctor listing. Query is a case-insensitive substring match
// on name, specialty, hospital or location; Specialty must match exactly.
// Empty fields do not filter.
type Filter struct {
	Query     string
	Specialty string
}

func (f Filter) normalized() Filter {
	return Filter{
		Query:     strings.ToLower(strings.TrimSpace(f.Query)),
		Specialty: strings.TrimSpace(f.Specialty),
	}
}

func (f Filter) matches(d Doctor) bool {
	if f.Specialty != "" && d.Specialty != f.Specialty {
		return false
	}
	if f.Query == "" {
		return true
	}
	for _, field := range []string{d.Name, d.Specialty, d.Hospital, d.Location} {
		if strings.Contains(strings.ToLower(field), f.Query) {
			return true
		}
	}
	return false
}

type Store interface {
	List(ctx context.Context, f Filter) ([]Doctor, error)
	Specialties(ctx context.Context) ([]Specialty, error)
	Hospitals(ctx context.Context) ([]Hospital, error)
}

// MemoryStore serves a fixed listing. It is read-only and safe for concurrent use.
type MemoryStore struct {
	doctors     []Doctor
	specialties []Specialty
	hospitals   []Hospital
}

// NewMemoryStore returns a store over the built-in Kolkata listing.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		doctors:     SeedDoctors(),
		specialties: SeedSpecialties(),
		hospitals:   SeedHospitals(),
	}
}

func (m *MemoryStore) List(_ context.Context, f Filter) ([]Doctor, error) {
	f = f.normalized()
	out := []Doctor{}
	for _, d := range m.doctors {
		if f.matches(d) {
			out = append(out, cloneDoctor(d))
		}
	}
	return out, nil
}

func (m *MemoryStore) Specialties(context.Context) ([]Specialty, error) {
	return append([]Specialty{}, m.specialties...), nil
}

func (m *MemoryStore) Hospitals(context.Context) ([]Hospital, error) {
	return append([]Hospital{}, m.hospitals...), nil
}

func cloneDoctor(d Doctor) Doctor {
	d.Languages = append([]string(nil), d.Languages...)
	return d
}
