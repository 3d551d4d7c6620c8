package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// Machine-readable conflict codes carried by StateError. Clients branch on
// these; the messages are for humans.
const (
	CodeInvalidWindow       = "INVALID_WINDOW"
	CodeInvalidCapacity     = "INVALID_CAPACITY"
	CodeJobNotConfigured    = "JOB_NOT_CONFIGURED"
	CodeSlotFull            = "SLOT_FULL"
	CodeSessionTerminal     = "SESSION_TERMINAL"
	CodeSessionNotActive    = "SESSION_NOT_ACTIVE"
	CodeAlreadyAnswered     = "ALREADY_ANSWERED"
	CodeParentUnanswered    = "PARENT_UNANSWERED"
	CodeWrongFaceCount      = "WRONG_FACE_COUNT"
	CodeSandboxUnavailable  = "SANDBOX_UNAVAILABLE"
	CodeLanguageUnsupported = "LANGUAGE_UNSUPPORTED"
	CodeQuestionHasNoTests  = "QUESTION_HAS_NO_TESTS"
	CodeNotVerified         = "ID_NOT_VERIFIED"
	CodeLinkNotYetActive    = "LINK_NOT_YET_ACTIVE"
	CodeLinkExpired         = "LINK_EXPIRED"
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StateError reports that an operation is not legal in the entity's current
// state. The code is stable and machine-readable.
type StateError struct {
	Code    string
	Message string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStateError creates a new state error
func NewStateError(code, format string, args ...any) error {
	return &StateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsStateError checks whether err is a StateError, optionally matching a code.
// An empty code matches any StateError.
func IsStateError(err error, code string) bool {
	var se *StateError
	if !errors.As(err, &se) {
		return false
	}
	return code == "" || se.Code == code
}

// DegradedError marks a failure the caller should absorb into a degraded
// flag rather than propagate: the operation produced a usable (reduced)
// result despite it.
type DegradedError struct {
	Capability string
	Err        error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s degraded: %v", e.Capability, e.Err)
}

func (e *DegradedError) Unwrap() error {
	return e.Err
}

// NewDegradedError creates a new degraded-capability error
func NewDegradedError(capability string, err error) error {
	return &DegradedError{Capability: capability, Err: err}
}

// IsDegraded checks if an error is a degraded-capability error
func IsDegraded(err error) bool {
	var de *DegradedError
	return errors.As(err, &de)
}
