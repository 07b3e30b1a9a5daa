// Package sqlite provides a SQLite-backed contact submission log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ezmnysniper7/portfolio/internal/platform/storage/sqlitemigrate"
	"github.com/ezmnysniper7/portfolio/internal/services/contact/storage"
	"github.com/ezmnysniper7/portfolio/internal/services/contact/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// MaxListLimit caps ListRecentSubmissions.
const MaxListLimit = 500

// Store persists contact submissions in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.SubmissionStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite contact store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordSubmission appends one submission and returns its row id.
func (s *Store) RecordSubmission(ctx context.Context, submission storage.Submission) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	switch submission.Status {
	case storage.StatusDelivered, storage.StatusFailed, storage.StatusSkipped:
	default:
		return 0, fmt.Errorf("unknown submission status %q", submission.Status)
	}
	createdAt := submission.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contact_submissions (
		   name,
		   email,
		   message,
		   locale,
		   status,
		   relay_id,
		   error,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		submission.Name,
		submission.Email,
		submission.Message,
		submission.Locale,
		string(submission.Status),
		submission.RelayID,
		submission.Error,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("record contact submission: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read submission id: %w", err)
	}
	return id, nil
}

// ListRecentSubmissions returns up to limit submissions, newest first.
func (s *Store) ListRecentSubmissions(ctx context.Context, limit int) ([]storage.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, message, locale, status, relay_id, error, created_at
		   FROM contact_submissions
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var out []storage.Submission
	for rows.Next() {
		var (
			submission storage.Submission
			status     string
			createdAt  int64
		)
		if err := rows.Scan(
			&submission.ID,
			&submission.Name,
			&submission.Email,
			&submission.Message,
			&submission.Locale,
			&status,
			&submission.RelayID,
			&submission.Error,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		submission.Status = storage.Status(status)
		submission.CreatedAt = fromMillis(createdAt)
		out = append(out, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}
	return out, nil
}
