// Package storage defines persistence contracts for contact submissions.
package storage

import (
	"context"
	"time"
)

// Status is the delivery outcome recorded for a submission.
type Status string

const (
	// StatusDelivered means the relay accepted the message.
	StatusDelivered Status = "delivered"
	// StatusFailed means the relay was called and returned an error.
	StatusFailed Status = "failed"
	// StatusSkipped means no relay was configured.
	StatusSkipped Status = "skipped"
)

// Submission is one recorded contact attempt.
type Submission struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	Locale    string
	Status    Status
	RelayID   string
	Error     string
	CreatedAt time.Time
}

// SubmissionStore appends and lists contact submissions.
type SubmissionStore interface {
	RecordSubmission(ctx context.Context, submission Submission) (int64, error)
	ListRecentSubmissions(ctx context.Context, limit int) ([]Submission, error)
}
