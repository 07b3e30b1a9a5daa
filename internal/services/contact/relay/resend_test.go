package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ezmnysniper7/portfolio/internal/services/contact"
)

func TestNewRequiresKeyAndRecipient(t *testing.T) {
	t.Parallel()

	tests := []Config{
		{From: "a@b.c", To: []string{"me@b.c"}},
		{APIKey: "key", From: "a@b.c"},
		{APIKey: " ", From: "a@b.c", To: []string{"me@b.c"}},
		{APIKey: "key", From: "a@b.c", To: []string{" "}},
	}
	for _, cfg := range tests {
		if _, err := New(cfg); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("New(%+v) err = %v, want ErrNotConfigured", cfg, err)
		}
	}
	if _, err := New(Config{APIKey: "key", To: []string{"me@b.c"}}); err == nil || errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected sender error, got %v", err)
	}
}

func TestSendPostsPlainTextEmail(t *testing.T) {
	t.Parallel()

	var got map[string]any
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/emails") {
			t.Errorf("request = %s %s, want POST /emails", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer server.Close()

	relay, err := New(Config{
		APIKey:  "re_test",
		From:    "Portfolio <noreply@example.com>",
		To:      []string{"owner@example.com"},
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	id, err := relay.Send(context.Background(), contact.Message{Name: "Ada", Email: "ada@example.com", Body: "Hello there"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if id != "email-123" {
		t.Fatalf("id = %q, want %q", id, "email-123")
	}
	if auth != "Bearer re_test" {
		t.Fatalf("Authorization = %q", auth)
	}
	if got["subject"] != "Portfolio contact from Ada" {
		t.Fatalf("subject = %v", got["subject"])
	}
	if got["text"] != "Name: Ada\nEmail: ada@example.com\n\nMessage:\nHello there" {
		t.Fatalf("text = %q", got["text"])
	}
	if got["from"] != "Portfolio <noreply@example.com>" {
		t.Fatalf("from = %v", got["from"])
	}
	to, ok := got["to"].([]any)
	if !ok || len(to) != 1 || to[0] != "owner@example.com" {
		t.Fatalf("to = %v", got["to"])
	}
}

func TestSendReturnsProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"statusCode":500,"name":"internal_server_error","message":"boom"}`))
	}))
	defer server.Close()

	relay, err := New(Config{APIKey: "k", From: "a@b.c", To: []string{"me@b.c"}, BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := relay.Send(context.Background(), contact.Message{Name: "x", Email: "x@y.z", Body: "m"}); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestSendHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	relay, err := New(Config{APIKey: "k", From: "a@b.c", To: []string{"me@b.c"}, BaseURL: "http://127.0.0.1:1/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := relay.Send(ctx, contact.Message{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSendStopsAtContextDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	relay, err := New(Config{APIKey: "k", From: "a@b.c", To: []string{"me@b.c"}, BaseURL: server.URL, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, err = relay.Send(ctx, contact.Message{Name: "x", Email: "x@y.z", Body: "m"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(started); elapsed > 5*time.Second {
		t.Fatalf("Send returned after %s, want prompt return at the deadline", elapsed)
	}
}

func TestSendMarksRejectedCredentials(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"statusCode":401,"name":"validation_error","message":"API key is invalid"}`))
		}))

		relay, err := New(Config{APIKey: "bad", From: "a@b.c", To: []string{"me@b.c"}, BaseURL: server.URL})
		if err != nil {
			server.Close()
			t.Fatalf("New: %v", err)
		}
		_, err = relay.Send(context.Background(), contact.Message{Name: "x", Email: "x@y.z", Body: "m"})
		server.Close()
		if !errors.Is(err, contact.ErrRelayUnauthorized) {
			t.Fatalf("status %d: err = %v, want ErrRelayUnauthorized", status, err)
		}
	}
}

func TestSendProviderFailureIsNotCredentialError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"statusCode":429,"name":"rate_limit_exceeded","message":"slow down"}`))
	}))
	defer server.Close()

	relay, err := New(Config{APIKey: "k", From: "a@b.c", To: []string{"me@b.c"}, BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = relay.Send(context.Background(), contact.Message{Name: "x", Email: "x@y.z", Body: "m"})
	if err == nil || errors.Is(err, contact.ErrRelayUnauthorized) {
		t.Fatalf("err = %v, want plain provider error", err)
	}
}

func TestParseRecipients(t *testing.T) {
	t.Parallel()

	got := ParseRecipients(" a@b.c, ,d@e.f ")
	if len(got) != 2 || got[0] != "a@b.c" || got[1] != "d@e.f" {
		t.Fatalf("ParseRecipients = %v", got)
	}
	if got := ParseRecipients(""); len(got) != 0 {
		t.Fatalf("ParseRecipients(empty) = %v", got)
	}
}
