// Package sqlitemigrate applies embedded SQL migrations to SQLite stores.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const (
	migrationTable = "schema_migrations"
	upMarker       = "-- +migrate Up"
	downMarker     = "-- +migrate Down"
)

// Apply runs every *.sql file under root in lexical order, recording each
// file name so a migration executes at most once per database.
func Apply(ctx context.Context, db *sql.DB, migrations fs.FS, root string) error {
	if db == nil {
		return errors.New("sql db is required")
	}
	if migrations == nil {
		return errors.New("migration fs is required")
	}
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	files, err := listMigrations(migrations, root)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range files {
		if err := applyOne(ctx, db, migrations, root, name); err != nil {
			return err
		}
	}
	return nil
}

func listMigrations(migrations fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(migrations, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func applyOne(ctx context.Context, db *sql.DB, migrations fs.FS, root, name string) error {
	key := name
	if root != "." {
		key = path.Join(root, name)
	}

	applied, err := isApplied(ctx, db, key)
	if err != nil {
		return fmt.Errorf("check migration %s: %w", name, err)
	}
	if applied {
		return nil
	}

	content, err := fs.ReadFile(migrations, path.Join(root, name))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}
	upSQL := UpSection(string(content))
	if strings.TrimSpace(upSQL) == "" {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, upSQL); err != nil && !IsAlreadyExistsError(err) {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		key, time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", name, err)
	}
	return nil
}

// UpSection returns the SQL between the Up and Down markers. Files without
// an Up marker are treated as all-up.
func UpSection(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	body := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		return body[:downIdx]
	}
	return body
}

// IsAlreadyExistsError reports whether err comes from idempotent DDL.
func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func isApplied(ctx context.Context, db *sql.DB, key string) (bool, error) {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", key).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
