// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/ezmnysniper7/portfolio/internal/platform/errors"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

var statusByKind = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindUnavailable:  http.StatusServiceUnavailable,
	KindNotFound:     http.StatusNotFound,
}

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// FromDomain converts a coded domain error into a typed web error. Errors
// without a domain code pass through unchanged.
func FromDomain(err error) error {
	if err == nil {
		return nil
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr
	}
	var domainErr *domainerrors.Error
	if !stderrors.As(err, &domainErr) {
		return err
	}
	return Error{
		Kind:    kindForClass(domainErr.Code.Class()),
		Key:     domainErr.Code.MessageKey(),
		Message: domainErr.Error(),
	}
}

func kindForClass(class domainerrors.Class) Kind {
	switch class {
	case domainerrors.ClassInvalidInput:
		return KindInvalidInput
	case domainerrors.ClassUnavailable:
		return KindUnavailable
	case domainerrors.ClassNotFound:
		return KindNotFound
	default:
		return KindUnknown
	}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(FromDomain(err), &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code. Uncoded errors and
// KindUnknown map to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(FromDomain(err), &appErr) {
		return http.StatusInternalServerError
	}
	if status, ok := statusByKind[appErr.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
