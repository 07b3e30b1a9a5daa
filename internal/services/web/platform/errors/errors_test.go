package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	domainerrors "github.com/ezmnysniper7/portfolio/internal/platform/errors"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{kind: KindInvalidInput, want: http.StatusBadRequest},
		{kind: KindUnavailable, want: http.StatusServiceUnavailable},
		{kind: KindNotFound, want: http.StatusNotFound},
		{kind: KindUnknown, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "x")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindUnavailable}
	if got := err.Error(); got != string(KindUnavailable) {
		t.Fatalf("Error() = %q, want %q", got, string(KindUnavailable))
	}
}

func TestLocalizationKeyReadsWrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrap: %w", EK(KindNotFound, " errors.not_found.title ", "missing"))
	if got := LocalizationKey(err); got != "errors.not_found.title" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}

func TestDomainCodesMapToKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code    domainerrors.Code
		status  int
		wantKey string
	}{
		{code: domainerrors.CodeContactFieldRequired, status: http.StatusBadRequest, wantKey: "errors.contact.required"},
		{code: domainerrors.CodeContactInvalidEmail, status: http.StatusBadRequest, wantKey: "errors.contact.invalid_email"},
		{code: domainerrors.CodeContactRelayUnconfigured, status: http.StatusServiceUnavailable, wantKey: "errors.contact.unavailable"},
		{code: domainerrors.CodeContactRelayFailed, status: http.StatusInternalServerError, wantKey: "errors.contact.failed"},
		{code: domainerrors.CodeNotFound, status: http.StatusNotFound, wantKey: "errors.not_found.title"},
	}
	for _, tc := range tests {
		err := fmt.Errorf("submit: %w", domainerrors.New(tc.code, "detail"))
		if got := HTTPStatus(err); got != tc.status {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.status)
		}
		if got := LocalizationKey(err); got != tc.wantKey {
			t.Fatalf("LocalizationKey(%s) = %q, want %q", tc.code, got, tc.wantKey)
		}
	}
}

func TestFromDomainPassesThroughUncodedErrors(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	if got := FromDomain(plain); got != plain {
		t.Fatalf("FromDomain() = %v, want original error", got)
	}
	if got := FromDomain(nil); got != nil {
		t.Fatalf("FromDomain(nil) = %v, want nil", got)
	}
}
