package domain

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	ErrEmptyTitle             = errors.New("title cannot be empty")
	ErrTrackerUnavailable     = errors.New("tracker CLI is not installed or not in PATH")
	ErrTrackerUnauthenticated = errors.New("not authenticated with the tracker")
	ErrMissingToken           = errors.New("API token not set")
	ErrNoRepository           = errors.New("target repository could not be determined")
	ErrInvalidRepoRef         = errors.New("invalid repository reference")
	ErrUnknownBackend         = errors.New("unknown tracker backend")
	ErrConfigExists           = errors.New("config file already exists")
	ErrConfigNil              = errors.New("config is nil")
)

// PreflightError reports an environment problem that stops a run before
// anything is published. Hints are printed to the operator as-is.
type PreflightError struct {
	Err   error
	Hints []string
}

func (e *PreflightError) Error() string {
	if len(e.Hints) == 0 {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n" + strings.Join(e.Hints, "\n")
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}
