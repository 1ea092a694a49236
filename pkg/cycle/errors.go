package cycle

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a cycle is requested while one is in flight.
var ErrBusy = errors.New("cycle: a capture cycle is already in flight")

// Kind classifies a cycle failure. The set is closed: every failure a
// cycle can surface maps to exactly one kind.
type Kind int

const (
	// KindCaptureCancelled: the user cancelled the capture. Silent
	// reset, not an error to the user.
	KindCaptureCancelled Kind = iota

	// KindCaptureFailure: the capture produced no image data.
	KindCaptureFailure

	// KindTransportFailure: upload or analysis network/service error.
	KindTransportFailure

	// KindSensorFailure: depth read failure. Degrades to the size-based
	// estimate and is never surfaced to the user.
	KindSensorFailure
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindCaptureCancelled:
		return "capture_cancelled"
	case KindCaptureFailure:
		return "capture_failure"
	case KindTransportFailure:
		return "transport_failure"
	case KindSensorFailure:
		return "sensor_failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified cycle failure.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cycle [%s]: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Silent reports whether the failure resets the cycle without telling
// the user anything.
func (e *Error) Silent() bool {
	return e.Kind == KindCaptureCancelled
}

// wrap classifies err under kind.
func wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from an error chain.
// ok is false for unclassified errors (including ErrBusy).
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}
