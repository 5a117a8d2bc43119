package app

import (
	"errors"
	"fmt"

	"modscan/internal/services"
)

const (
	exitFailure         = 1
	exitMissingManifest = 2
	exitMalformedList   = 3
)

// ExitError carries the process exit code out of a RunE handler.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingManifest):
		return exitMissingManifest
	case errors.Is(err, services.ErrManifestParse):
		return exitMalformedList
	default:
		return exitFailure
	}
}
