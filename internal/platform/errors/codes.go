// Package errors provides structured domain errors with localization keys.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Contact errors
	CodeContactFieldRequired     Code = "CONTACT_FIELD_REQUIRED"
	CodeContactInvalidEmail      Code = "CONTACT_INVALID_EMAIL"
	CodeContactFieldTooLong      Code = "CONTACT_FIELD_TOO_LONG"
	CodeContactInvalidPayload    Code = "CONTACT_INVALID_PAYLOAD"
	CodeContactRelayUnconfigured Code = "CONTACT_RELAY_UNCONFIGURED"
	CodeContactRelayFailed       Code = "CONTACT_RELAY_FAILED"

	// Content errors
	CodeNotFound Code = "NOT_FOUND"
)

// Class groups codes by how callers should respond to them.
type Class int

const (
	ClassInternal Class = iota
	ClassInvalidInput
	ClassUnavailable
	ClassNotFound
)

// Class maps a code to its response class.
func (c Code) Class() Class {
	switch c {
	case CodeContactFieldRequired,
		CodeContactInvalidEmail,
		CodeContactFieldTooLong,
		CodeContactInvalidPayload:
		return ClassInvalidInput
	case CodeContactRelayUnconfigured:
		return ClassUnavailable
	case CodeNotFound:
		return ClassNotFound
	default:
		return ClassInternal
	}
}

// MessageKey returns the catalog key of the user-facing message.
func (c Code) MessageKey() string {
	switch c {
	case CodeContactFieldRequired, CodeContactInvalidPayload:
		return "errors.contact.required"
	case CodeContactInvalidEmail:
		return "errors.contact.invalid_email"
	case CodeContactFieldTooLong:
		return "errors.contact.too_long"
	case CodeContactRelayUnconfigured:
		return "errors.contact.unavailable"
	case CodeContactRelayFailed:
		return "errors.contact.failed"
	case CodeNotFound:
		return "errors.not_found.title"
	default:
		return "errors.internal.title"
	}
}
