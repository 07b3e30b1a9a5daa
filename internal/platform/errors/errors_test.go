package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeContactRelayFailed, "send email", stderrors.New("timeout"))
	if got := err.Error(); got != "send email: timeout" {
		t.Fatalf("Error() = %q, want %q", got, "send email: timeout")
	}
	if got := New(CodeNotFound, "").Error(); got != string(CodeNotFound) {
		t.Fatalf("Error() = %q, want code fallback", got)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("submit: %w", New(CodeContactInvalidEmail, "bad email"))
	if !stderrors.Is(err, New(CodeContactInvalidEmail, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeContactFieldRequired, "")) {
		t.Fatal("expected errors.Is to reject a different code")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("root")
	if !stderrors.Is(Wrap(CodeUnknown, "x", cause), cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if got := CodeOf(fmt.Errorf("wrap: %w", New(CodeContactFieldTooLong, "long"))); got != CodeContactFieldTooLong {
		t.Fatalf("CodeOf = %q", got)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("CodeOf(nil) = %q, want %q", got, CodeUnknown)
	}
}

func TestCodeClassAndMessageKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code  Code
		class Class
		key   string
	}{
		{code: CodeContactFieldRequired, class: ClassInvalidInput, key: "errors.contact.required"},
		{code: CodeContactInvalidPayload, class: ClassInvalidInput, key: "errors.contact.required"},
		{code: CodeContactInvalidEmail, class: ClassInvalidInput, key: "errors.contact.invalid_email"},
		{code: CodeContactFieldTooLong, class: ClassInvalidInput, key: "errors.contact.too_long"},
		{code: CodeContactRelayUnconfigured, class: ClassUnavailable, key: "errors.contact.unavailable"},
		{code: CodeContactRelayFailed, class: ClassInternal, key: "errors.contact.failed"},
		{code: CodeNotFound, class: ClassNotFound, key: "errors.not_found.title"},
		{code: CodeUnknown, class: ClassInternal, key: "errors.internal.title"},
	}
	for _, tc := range tests {
		if got := tc.code.Class(); got != tc.class {
			t.Fatalf("%s.Class() = %d, want %d", tc.code, got, tc.class)
		}
		if got := tc.code.MessageKey(); got != tc.key {
			t.Fatalf("%s.MessageKey() = %q, want %q", tc.code, got, tc.key)
		}
	}
}
