// Package relay delivers contact messages through the Resend transactional
// email API.
package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/ezmnysniper7/portfolio/internal/services/contact"
)

// Config configures the Resend relay.
type Config struct {
	APIKey string
	From   string
	To     []string
	// BaseURL overrides the API endpoint; empty uses the Resend default.
	BaseURL string
	Timeout time.Duration
}

// ErrNotConfigured reports a missing API key or recipient.
var ErrNotConfigured = errors.New("resend relay is not configured")

// Resend sends contact messages as plain-text email.
type Resend struct {
	client *resend.Client
	from   string
	to     []string
}

var _ contact.Relay = (*Resend)(nil)

// New builds a Resend relay. It returns ErrNotConfigured when the API key
// or recipient list is empty so callers can run without a relay.
func New(cfg Config) (*Resend, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	to := cleanRecipients(cfg.To)
	if apiKey == "" || len(to) == 0 {
		return nil, ErrNotConfigured
	}
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		return nil, fmt.Errorf("sender address is required")
	}

	httpClient := &http.Client{Timeout: cfg.Timeout, Transport: statusTransport{next: http.DefaultTransport}}
	client := resend.NewCustomClient(httpClient, apiKey)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		parsed, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		client.BaseURL = parsed
	}
	return &Resend{client: client, from: from, to: to}, nil
}

// Send delivers message and returns the provider's email id.
func (r *Resend) Send(ctx context.Context, message contact.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	status := new(int)
	ctx = context.WithValue(ctx, statusKey{}, status)
	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      r.to,
		Subject: Subject(message),
		Text:    Body(message),
		ReplyTo: message.Email,
	})
	if err != nil {
		if *status == http.StatusUnauthorized || *status == http.StatusForbidden {
			return "", fmt.Errorf("resend send: status %d: %v: %w", *status, err, contact.ErrRelayUnauthorized)
		}
		return "", fmt.Errorf("resend send: %w", err)
	}
	if sent == nil {
		return "", errors.New("resend send: empty response")
	}
	return sent.Id, nil
}

type statusKey struct{}

// statusTransport stores the response status in the *int bound to the
// request context. The SDK reports HTTP failures as plain messages.
type statusTransport struct {
	next http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if resp != nil {
		if status, ok := req.Context().Value(statusKey{}).(*int); ok {
			*status = resp.StatusCode
		}
	}
	return resp, err
}

// Subject renders the email subject line.
func Subject(message contact.Message) string {
	return "Portfolio contact from " + message.Name
}

// Body renders the plain-text email body.
func Body(message contact.Message) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", message.Name, message.Email, message.Body)
}

// ParseRecipients splits a comma-separated address list.
func ParseRecipients(raw string) []string {
	return cleanRecipients(strings.Split(raw, ","))
}

func cleanRecipients(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
