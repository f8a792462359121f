package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// The engine's error taxonomy. Every failure is scoped to one operation;
// none is fatal to the process. Handlers map these to HTTP statuses.

// ValidationError: malformed or out-of-policy input. Rule names the specific
// policy that was violated so the caller can surface it verbatim.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Message)
}

func NewValidationError(rule, format string, args ...interface{}) error {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError: a referenced entity is missing. No state was mutated.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// PreconditionError: the entity exists but is in the wrong state for the
// requested transition. Callers should re-fetch and retry with fresh data.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Message
}

func NewPreconditionError(format string, args ...interface{}) error {
	return &PreconditionError{Message: fmt.Sprintf(format, args...)}
}

// StoreUnavailableError: the persistence layer is unreachable or timed out.
// Retryable; the engine guarantees no partial writes were applied.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return "store unavailable: " + e.Err.Error()
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

func NewStoreUnavailableError(err error) error {
	return &StoreUnavailableError{Err: err}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsPreconditionError(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

func IsStoreUnavailable(err error) bool {
	var su *StoreUnavailableError
	return errors.As(err, &su)
}
