package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Migration creates the listing tables. It is safe to run on every start.
const Migration = `
CREATE TABLE IF NOT EXISTS doctors (
    id               TEXT PRIMARY KEY,
    position         INT  NOT NULL,
    name             TEXT NOT NULL,
    specialty        TEXT NOT NULL,
    qualification    TEXT NOT NULL DEFAULT '',
    experience       TEXT NOT NULL DEFAULT '',
    rating           DOUBLE PRECISION NOT NULL DEFAULT 0,
    reviews          INT  NOT NULL DEFAULT 0,
    location         TEXT NOT NULL DEFAULT '',
    hospital         TEXT NOT NULL DEFAULT '',
    consultation_fee TEXT NOT NULL DEFAULT '',
    availability     TEXT NOT NULL DEFAULT '',
    languages        TEXT[] NOT NULL DEFAULT '{}',
    image            TEXT NOT NULL DEFAULT '',
    phone            TEXT NOT NULL DEFAULT '',
    google_url       TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_doctors_specialty ON doctors (specialty);

CREATE TABLE IF NOT EXISTS specialties (
    name        TEXT PRIMARY KEY,
    position    INT  NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS hospitals (
    name       TEXT PRIMARY KEY,
    position   INT  NOT NULL,
    city       TEXT NOT NULL DEFAULT '',
    image      TEXT NOT NULL DEFAULT '',
    google_url TEXT NOT NULL DEFAULT ''
);
`

// pgConn is the subset of *pgxpool.Pool the store needs.
type pgConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore reads the listing from Postgres.
type PostgresStore struct {
	db pgConn
}

func NewPostgresStore(db pgConn) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema applies Migration and inserts the built-in listing rows that
// are not present yet. Existing rows are left untouched.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Migration); err != nil {
		return fmt.Errorf("migrate directory: %w", err)
	}

	const insertDoctor = `INSERT INTO doctors (id, position, name, specialty, qualification, experience,
    rating, reviews, location, hospital, consultation_fee, availability, languages, image, phone, google_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (id) DO NOTHING`
	for i, d := range SeedDoctors() {
		if _, err := s.db.Exec(ctx, insertDoctor, d.ID, i, d.Name, d.Specialty, d.Qualification, d.Experience,
			d.Rating, d.Reviews, d.Location, d.Hospital, d.ConsultationFee, d.Availability, d.Languages,
			d.Image, d.Phone, d.GoogleURL); err != nil {
			return fmt.Errorf("seed doctor %s: %w", d.ID, err)
		}
	}

	const insertSpecialty = `INSERT INTO specialties (name, position, description) VALUES ($1, $2, $3)
ON CONFLICT (name) DO NOTHING`
	for i, sp := range SeedSpecialties() {
		if _, err := s.db.Exec(ctx, insertSpecialty, sp.Name, i, sp.Description); err != nil {
			return fmt.Errorf("seed specialty %s: %w", sp.Name, err)
		}
	}

	const insertHospital = `INSERT INTO hospitals (name, position, city, image, google_url) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO NOTHING`
	for i, h := range SeedHospitals() {
		if _, err := s.db.Exec(ctx, insertHospital, h.Name, i, h.City, h.Image, h.GoogleURL); err != nil {
			return fmt.Errorf("seed hospital %s: %w", h.Name, err)
		}
	}
	return nil
}

const listDoctorsQuery = `SELECT id, name, specialty, qualification, experience, rating, reviews, location,
    hospital, consultation_fee, availability, languages, image, phone, google_url
FROM doctors
WHERE ($1 = '' OR name ILIKE $2 OR specialty ILIKE $2 OR hospital ILIKE $2 OR location ILIKE $2)
  AND ($3 = '' OR specialty = $3)
ORDER BY position`

func (s *PostgresStore) List(ctx context.Context, f Filter) ([]Doctor, error) {
	f = f.normalized()
	pattern := "%" + escapeLike(f.Query) + "%"

	rows, err := s.db.Query(ctx, listDoctorsQuery, f.Query, pattern, f.Specialty)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	out := []Doctor{}
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Qualification, &d.Experience, &d.Rating,
			&d.Reviews, &d.Location, &d.Hospital, &d.ConsultationFee, &d.Availability, &d.Languages,
			&d.Image, &d.Phone, &d.GoogleURL); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Specialties(ctx context.Context) ([]Specialty, error) {
	rows, err := s.db.Query(ctx, `SELECT name, description FROM specialties ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer rows.Close()

	out := []Specialty{}
	for rows.Next() {
		var sp Specialty
		if err := rows.Scan(&sp.Name, &sp.Description); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Hospitals(ctx context.Context) ([]Hospital, error) {
	rows, err := s.db.Query(ctx, `SELECT name, city, image, google_url FROM hospitals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()

	out := []Hospital{}
	for rows.Next() {
		var h Hospital
		if err := rows.Scan(&h.Name, &h.City, &h.Image, &h.GoogleURL); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
