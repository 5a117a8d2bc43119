package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingManifest is returned when no directory entry is the mod list.
	ErrMissingManifest = errors.New("mod list not found")
	// ErrManifestParse is the sentinel wrapped by ManifestParseError.
	ErrManifestParse = errors.New("malformed mod list")
)

// ManifestParseError reports mod list bytes that do not have the
// {"mods": [{"name", "enabled"}]} shape.
type ManifestParseError struct {
	Reason string
	Cause  error
}

func (e *ManifestParseError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrManifestParse, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", ErrManifestParse, e.Reason, e.Cause)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Cause
}

// Is matches ErrManifestParse so callers need not know the concrete type.
func (e *ManifestParseError) Is(target error) bool {
	return target == ErrManifestParse
}
