package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// ConfigurationError signals a missing or empty credential. It is raised
// before any network call is made and aborts the pipeline.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Name)
}

// ExternalServiceError is a non-2xx or transport failure from an external
// API. The raw response body is carried for diagnostics. Never retried.
type ExternalServiceError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Service, e.StatusCode, e.Body)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed database write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PartialDispatchError reports the attendees whose invitation emails could
// not be sent. The meeting itself has already been persisted, so callers
// must treat this as a warning rather than a failure.
type PartialDispatchError struct {
	Failed []string
}

func (e *PartialDispatchError) Error() string {
	return fmt.Sprintf("failed to send invites to: %s", strings.Join(e.Failed, ", "))
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

func IsExternalServiceError(err error) bool {
	var ee *ExternalServiceError
	return errors.As(err, &ee)
}

func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func IsValidationError(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFoundError(err error) bool { return errors.Is(err, ErrNotFound) }
