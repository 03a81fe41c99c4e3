package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSensorUnavailable  = errors.New("sensor unavailable")
	ErrMalformedCommand   = errors.New("malformed command")
	ErrInvalidBiometricID = errors.New("invalid biometric id")
	ErrEnrollmentTimeout  = errors.New("enrollment timed out")
)

// RemoteStatusError is returned when the remote service answers with a
// non-success HTTP status.
type RemoteStatusError struct {
	Operation  string
	StatusCode int
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d", e.Operation, e.StatusCode)
}
