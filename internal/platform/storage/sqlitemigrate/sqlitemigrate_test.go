package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsMigration(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"001_submissions.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE submissions(id INTEGER PRIMARY KEY);\n-- +migrate Down\nDROP TABLE submissions;"),
		},
	}
	if err := Apply(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := countRows(t, db, "schema_migrations"); got != 1 {
		t.Fatalf("schema_migrations rows = %d, want 1", got)
	}
	if !tableExists(t, db, "submissions") {
		t.Fatal("expected submissions table")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"001_submissions.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE submissions(id INTEGER PRIMARY KEY);"),
		},
	}
	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, migrations, "."); err != nil {
			t.Fatalf("Apply() run %d error = %v", i, err)
		}
	}
	if got := countRows(t, db, "schema_migrations"); got != 1 {
		t.Fatalf("schema_migrations rows = %d, want 1", got)
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	db := openTestDB(t)

	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")},
	}
	if err := Apply(context.Background(), db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := countRows(t, db, "schema_migrations"); got != 0 {
		t.Fatalf("schema_migrations rows = %d, want 0", got)
	}

	fixed := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE things(id INTEGER PRIMARY KEY);")},
	}
	if err := Apply(context.Background(), db, fixed, ""); err != nil {
		t.Fatalf("Apply() fixed error = %v", err)
	}
	if got := countRows(t, db, "schema_migrations"); got != 1 {
		t.Fatalf("schema_migrations rows = %d, want 1", got)
	}
}

func TestApplyKeysByRoot(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"contact/001_log.sql": &fstest.MapFile{Data: []byte("CREATE TABLE log_rows(id INTEGER PRIMARY KEY);")},
		"contact/README.md":   &fstest.MapFile{Data: []byte("not a migration")},
	}
	if err := Apply(context.Background(), db, migrations, "contact"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var key string
	if err := db.QueryRow("SELECT name FROM schema_migrations").Scan(&key); err != nil {
		t.Fatalf("read migration key: %v", err)
	}
	if key != "contact/001_log.sql" {
		t.Fatalf("migration key = %q, want %q", key, "contact/001_log.sql")
	}
}

func TestApplyRejectsMissingInputs(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
	db := openTestDB(t)
	if err := Apply(context.Background(), db, nil, ""); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id INT);", want: "CREATE TABLE a(id INT);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id INT);", want: "\nCREATE TABLE a(id INT);"},
		{name: "up and down", content: "-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;", want: "\nCREATE TABLE a(id INT);\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := UpSection(tc.content); got != tc.want {
				t.Fatalf("UpSection() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	t.Parallel()

	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error should not match")
	}
	if !IsAlreadyExistsError(errors.New("table submissions already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: locale")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("syntax error should not match")
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&value); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("check table %s: %v", table, err)
	}
	return name == table
}
