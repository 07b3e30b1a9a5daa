// Package contact validates contact form submissions, relays them to the
// site owner, and records every outcome.
package contact

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/ezmnysniper7/portfolio/internal/platform/errors"
	"github.com/ezmnysniper7/portfolio/internal/platform/otel"
	"github.com/ezmnysniper7/portfolio/internal/platform/timeouts"
	"github.com/ezmnysniper7/portfolio/internal/services/contact/storage"
)

const (
	// MaxNameRunes bounds the submitter name.
	MaxNameRunes = 200
	// MaxMessageRunes bounds the message body.
	MaxMessageRunes = 5000
	// MaxEmailRunes bounds the reply address.
	MaxEmailRunes = 320
)

const tracerName = "github.com/ezmnysniper7/portfolio/internal/services/contact"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the raw form input.
type Submission struct {
	Name    string
	Email   string
	Message string
	Locale  string
}

// Message is a validated submission ready for delivery.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Receipt describes a delivered message.
type Receipt struct {
	RelayID     string
	SubmittedAt time.Time
}

// ErrRelayUnauthorized reports a relay that rejected its own credentials.
// Submit treats it like a missing relay.
var ErrRelayUnauthorized = errors.New("contact relay rejected credentials")

// Relay delivers one message and returns the provider's id for it.
type Relay interface {
	Send(ctx context.Context, message Message) (string, error)
}

// Validate trims the submission and checks it, returning a domain error
// coded for the first failing rule.
func Validate(submission Submission) (Message, error) {
	message := Message{
		Name:  strings.TrimSpace(submission.Name),
		Email: strings.TrimSpace(submission.Email),
		Body:  strings.TrimSpace(submission.Message),
	}
	if message.Name == "" || message.Email == "" || message.Body == "" {
		return Message{}, apperrors.New(apperrors.CodeContactFieldRequired, "all fields are required")
	}
	if utf8.RuneCountInString(message.Email) > MaxEmailRunes || !emailPattern.MatchString(message.Email) {
		return Message{}, apperrors.New(apperrors.CodeContactInvalidEmail, "invalid email address")
	}
	if utf8.RuneCountInString(message.Name) > MaxNameRunes || utf8.RuneCountInString(message.Body) > MaxMessageRunes {
		return Message{}, apperrors.WithMetadata(apperrors.CodeContactFieldTooLong, "name or message too long", map[string]string{
			"max_name":    "200",
			"max_message": "5000",
		})
	}
	return message, nil
}

// Service handles contact submissions.
type Service struct {
	relay   Relay
	log     storage.SubmissionStore
	now     func() time.Time
	timeout time.Duration
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithSubmissionLog records every outcome to store.
func WithSubmissionLog(store storage.SubmissionStore) Option {
	return func(s *Service) {
		s.log = store
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRelayTimeout bounds each relay call.
func WithRelayTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Service) {
		if provider != nil {
			s.tracer = provider.Tracer(tracerName)
		}
	}
}

// NewService builds a Service. A nil relay leaves the service unconfigured:
// valid submissions are recorded and rejected as unavailable.
func NewService(relay Relay, opts ...Option) *Service {
	s := &Service{
		relay:   relay,
		now:     time.Now,
		timeout: timeouts.ContactRelay,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Configured reports whether a relay is available.
func (s *Service) Configured() bool {
	return s != nil && s.relay != nil
}

// Submit validates, relays, and records one submission. Delivery is a single
// attempt; the returned error carries a domain code for the failure class.
func (s *Service) Submit(ctx context.Context, submission Submission) (Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit", trace.WithAttributes(
		attribute.String("contact.locale", submission.Locale),
	))
	defer span.End()

	message, err := Validate(submission)
	if err != nil {
		span.SetAttributes(attribute.String("contact.outcome", "invalid"))
		return Receipt{}, err
	}

	submittedAt := s.now().UTC()
	record := storage.Submission{
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Body,
		Locale:    submission.Locale,
		CreatedAt: submittedAt,
	}

	if s.relay == nil {
		record.Status = storage.StatusSkipped
		s.record(ctx, record)
		span.SetAttributes(attribute.String("contact.outcome", string(storage.StatusSkipped)))
		return Receipt{}, apperrors.New(apperrors.CodeContactRelayUnconfigured, "email service not configured")
	}

	relayID, err := s.send(ctx, message)
	if err != nil {
		record.Status = storage.StatusFailed
		record.Error = err.Error()
		s.record(ctx, record)
		span.RecordError(err)
		span.SetStatus(codes.Error, "relay failed")
		log.Printf("contact relay failed locale=%s err=%v", submission.Locale, err)
		if errors.Is(err, ErrRelayUnauthorized) {
			return Receipt{}, apperrors.Wrap(apperrors.CodeContactRelayUnconfigured, "email service credentials rejected", err)
		}
		return Receipt{}, apperrors.Wrap(apperrors.CodeContactRelayFailed, "send email", err)
	}

	record.Status = storage.StatusDelivered
	record.RelayID = relayID
	s.record(ctx, record)
	span.SetAttributes(attribute.String("contact.outcome", string(storage.StatusDelivered)))
	return Receipt{RelayID: relayID, SubmittedAt: submittedAt}, nil
}

func (s *Service) send(ctx context.Context, message Message) (string, error) {
	ctx, span := s.tracer.Start(ctx, "contact.relay")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.relay.Send(ctx, message)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.String("contact.relay_id", id))
	return id, nil
}

// record never changes the submission outcome; failures are logged only.
func (s *Service) record(ctx context.Context, submission storage.Submission) {
	if s.log == nil {
		return
	}
	// The request context may already be done once the relay returns.
	ctx = context.WithoutCancel(ctx)
	if _, err := s.log.RecordSubmission(ctx, submission); err != nil {
		log.Printf("contact submission log write failed status=%s err=%v", submission.Status, err)
	}
}
