// Package httpx provides HTTP middleware and response helpers used by web
// modules.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"
)

// HeaderRequestID carries the correlation id on requests and responses.
const HeaderRequestID = "X-Request-ID"

// MaxJSONBodyBytes caps decoded JSON request bodies.
const MaxJSONBodyBytes = 64 << 10

// ErrBodyTooLarge reports a request body over MaxJSONBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ErrTrailingData reports bytes after the first JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON body")

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

type requestIDKey struct{}

var requestIDCounter atomic.Uint64

// Chain applies middleware in declaration order; the first wraps outermost.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// SetHeader sets a fixed response header before calling next.
func SetHeader(name, value string) Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(name, value)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestID reuses an inbound X-Request-ID or mints one, then binds it to
// the request context and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if requestID == "" {
				requestID = fmt.Sprintf("site-%x-%d", time.Now().UnixNano(), requestIDCounter.Add(1))
				r.Header.Set(HeaderRequestID, requestID)
			}
			w.Header().Set(HeaderRequestID, requestID)
			ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromRequest returns the id bound by RequestID, falling back to
// the inbound header, or "-".
func RequestIDFromRequest(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	if id := strings.TrimSpace(r.Header.Get(HeaderRequestID)); id != "" {
		return id
	}
	return "-"
}

// RecoverPanic logs the panic with its stack and answers 500.
func RecoverPanic(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				logger.Printf(
					"panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method,
					r.URL.Path,
					RequestIDFromRequest(r),
					recovered,
					strings.TrimSpace(string(debug.Stack())),
				)
				_ = WriteText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// DecodeJSON decodes exactly one size-capped JSON value from the request
// body into target.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	body := http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes)
	defer body.Close()
	dec := json.NewDecoder(body)
	if err := dec.Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// WriteJSON writes a JSON response with the provided status code.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes {"error": message} with statusCode.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{"error": message})
}

// WriteText writes a plain-text payload with the provided status code.
func WriteText(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// RequestContext returns r.Context(), or context.Background for a nil request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// WriteRedirect writes a 302 redirect to location.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if r == nil {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusFound)
		return
	}
	http.Redirect(w, r, location, http.StatusFound)
}
