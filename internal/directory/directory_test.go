package directory

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorNames(ds []Doctor) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name)
	}
	return out
}

func TestMemoryStoreList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, nil},
		{"by specialty", Filter{Specialty: "Cardiology"}, []string{"Dr. Rajesh Kumar", "Dr. Sandeep Ghosh"}},
		{"query on location", Filter{Query: "salt lake"}, []string{"Dr. Rajesh Kumar", "Dr. Meenakshi Pal"}},
		{"query on hospital", Filter{Query: "  SSKM "}, []string{"Dr. Rupa Sen"}},
		{"query on specialty text", Filter{Query: "ortho"}, []string{"Dr. Vikram Singh", "Dr. Abhishek Dutta"}},
		{"query and specialty", Filter{Query: "salt lake", Specialty: "Ophthalmology"}, []string{"Dr. Meenakshi Pal"}},
		{"specialty is exact", Filter{Specialty: "cardiology"}, []string{}},
		{"no match", Filter{Query: "mumbai"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.List(ctx, tt.filter)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Len(t, got, 10)
				return
			}
			assert.Equal(t, tt.want, doctorNames(got))
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	got[0].Languages[0] = "French"

	again, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, "English", again[0].Languages[0])
}

func TestMemoryStoreSpecialtiesAndHospitals(t *testing.T) {
	store := NewMemoryStore()

	specialties, err := store.Specialties(context.Background())
	require.NoError(t, err)
	require.Len(t, specialties, 6)
	assert.Equal(t, "Cardiology", specialties[0].Name)
	assert.Equal(t, "General Medicine", specialties[5].Name)

	hospitals, err := store.Hospitals(context.Background())
	require.NoError(t, err)
	assert.Len(t, hospitals, 4)
}

func TestSeedDoctorsUseKnownSpecialties(t *testing.T) {
	known := map[string]bool{}
	for _, s := range SeedSpecialties() {
		known[s.Name] = true
	}
	ids := map[string]bool{}
	for _, d := range SeedDoctors() {
		assert.True(t, known[d.Specialty], d.Name)
		assert.False(t, ids[d.ID], "duplicate id %s", d.ID)
		ids[d.ID] = true
	}
}

// fakeRows is a minimal pgx.Rows over in-memory values.
type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.idx-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: want %d columns, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

type fakeConn struct {
	rows     *fakeRows
	queryErr error
	execErr  error
	queries  []string
	args     [][]any
	execs    int
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.queries = append(c.queries, sql)
	c.args = append(c.args, args)
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.rows, nil
}

func (c *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.execs++
	return pgconn.CommandTag{}, c.execErr
}

func doctorRow(d Doctor) []any {
	return []any{d.ID, d.Name, d.Specialty, d.Qualification, d.Experience, d.Rating, d.Reviews, d.Location,
		d.Hospital, d.ConsultationFee, d.Availability, d.Languages, d.Image, d.Phone, d.GoogleURL}
}

func TestPostgresStoreList(t *testing.T) {
	seed := SeedDoctors()
	conn := &fakeConn{rows: &fakeRows{rows: [][]any{doctorRow(seed[0]), doctorRow(seed[6])}}}
	store := NewPostgresStore(conn)

	got, err := store.List(context.Background(), Filter{Query: " 50%_Off ", Specialty: " Cardiology "})
	require.NoError(t, err)

	assert.Equal(t, []Doctor{seed[0], seed[6]}, got)
	require.Len(t, conn.args, 1)
	assert.Equal(t, []any{"50%_off", `%50\%\_off%`, "Cardiology"}, conn.args[0])
	assert.True(t, strings.Contains(conn.queries[0], "ORDER BY position"))
}

func TestPostgresStoreListErrors(t *testing.T) {
	store := NewPostgresStore(&fakeConn{queryErr: errors.New("conn refused")})
	_, err := store.List(context.Background(), Filter{})
	assert.ErrorContains(t, err, "list doctors")

	iterErr := errors.New("broken pipe")
	store = NewPostgresStore(&fakeConn{rows: &fakeRows{err: iterErr}})
	_, err = store.List(context.Background(), Filter{})
	assert.ErrorIs(t, err, iterErr)
}

func TestPostgresStoreSpecialties(t *testing.T) {
	conn := &fakeConn{rows: &fakeRows{rows: [][]any{{"Cardiology", "Heart"}, {"Neurology", "Brain"}}}}
	got, err := NewPostgresStore(conn).Specialties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Specialty{{"Cardiology", "Heart"}, {"Neurology", "Brain"}}, got)
}

func TestPostgresStoreHospitals(t *testing.T) {
	conn := &fakeConn{rows: &fakeRows{rows: [][]any{{"Belle Vue Clinic", "Kolkata", "/x.png", "https://g"}}}}
	got, err := NewPostgresStore(conn).Hospitals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Hospital{{Name: "Belle Vue Clinic", City: "Kolkata", Image: "/x.png", GoogleURL: "https://g"}}, got)
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	conn := &fakeConn{}
	require.NoError(t, NewPostgresStore(conn).EnsureSchema(context.Background()))
	assert.Equal(t, 1+len(SeedDoctors())+len(SeedSpecialties())+len(SeedHospitals()), conn.execs)

	failing := &fakeConn{execErr: errors.New("permission denied")}
	err := NewPostgresStore(failing).EnsureSchema(context.Background())
	assert.ErrorContains(t, err, "migrate directory")
	assert.Equal(t, 1, failing.execs)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
