package session

import (
	"errors"
	"fmt"
)

var (
	ErrSurveyNotFound      = errors.New("survey not found")
	ErrLoadFailed          = errors.New("survey could not be loaded")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrPermissionDenied    = errors.New("microphone permission denied")
	ErrMissingIdentity     = errors.New("missing user identity")
	ErrDuplicateLocation   = errors.New("duplicate submission location")
	ErrRejected            = errors.New("submission rejected")
	ErrSubmissionFailed    = errors.New("submission failed")

	ErrInvalidQuestion     = errors.New("invalid question index")
	ErrInvalidOption       = errors.New("invalid option")
	ErrRecordingInProgress = errors.New("recording already in progress")
	ErrSubmitInProgress    = errors.New("submission already in progress")
	ErrNotReady            = errors.New("session is not ready")
	ErrSessionClosed       = errors.New("session is closed")
)

// RejectedError carries the reason given by the backend, empty if it gave
// none
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return ErrRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRejected, e.Reason)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// causeError ties an adapter error to one of the session kinds
type causeError struct {
	kind  error
	cause error
}

func (e *causeError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.cause)
}

func (e *causeError) Is(target error) bool {
	return target == e.kind
}

func (e *causeError) Unwrap() error {
	return e.cause
}

func withCause(kind, cause error) error {
	return &causeError{kind: kind, cause: cause}
}
