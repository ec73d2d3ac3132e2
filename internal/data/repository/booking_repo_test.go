package repository

import (
	"context"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// recordingDB captures the statement and arguments of the last Query call
// and hands back an empty result set.
type recordingDB struct {
	sql  string
	args []any
}

func (d *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.sql = sql
	d.args = args
	return emptyRows{}, nil
}

func (d *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	d.sql = sql
	d.args = args
	return emptyRows{}
}

func (d *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.sql = sql
	d.args = args
	return pgconn.CommandTag{}, nil
}

func (d *recordingDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (d *recordingDB) Ping(ctx context.Context) error            { return nil }
func (d *recordingDB) Close()                                    {}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// checkPlaceholders fails if the statement references a parameter that was
// not bound or binds one it never references; either way the extended
// protocol rejects the statement at Parse time.
func checkPlaceholders(t *testing.T, sql string, args []any) {
	t.Helper()

	seen := make(map[int]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(sql, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			t.Fatalf("bad placeholder %q", m[0])
		}
		if n < 1 || n > len(args) {
			t.Errorf("statement references $%d but only %d arguments are bound", n, len(args))
		}
		seen[n] = true
	}
	for n := 1; n <= len(args); n++ {
		if !seen[n] {
			t.Errorf("argument $%d is bound but never referenced in the statement", n)
		}
	}
}

func TestFindByOwnerBindsEveryParameter(t *testing.T) {
	db := &recordingDB{}
	repo := NewBookingRepository(db, zap.NewNop())
	ownerID := uuid.New()

	tests := []struct {
		name  string
		year  int
		month int
	}{
		{name: "no month filter", year: 0, month: 0},
		{name: "month filter", year: 2030, month: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.FindByOwner(context.Background(), ownerID, tt.year, tt.month, 10, 0); err != nil {
				t.Fatalf("FindByOwner: %v", err)
			}
			checkPlaceholders(t, db.sql, db.args)
		})
	}
}
