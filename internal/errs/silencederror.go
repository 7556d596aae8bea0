package errs

import (
	"errors"
)

type silencedError struct {
	error
}

// Silence marks err as one that should not be reported to the user, only its exit code matters
func Silence(err error) error {
	return &silencedError{err}
}

func (s *silencedError) Unwrap() error { return s.error }

func (s *silencedError) IsSilent() bool { return true }

func IsSilent(err error) bool {
	var silentErr interface {
		IsSilent() bool
	}
	return errors.As(err, &silentErr) && silentErr.IsSilent()
}
