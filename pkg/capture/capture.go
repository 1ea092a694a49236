// Package capture produces still photos for analysis.
package capture

import (
	"context"
	"errors"
)

// Sentinel errors for capture outcomes.
var (
	// ErrCancelled is returned when the user cancelled the capture.
	// Callers treat this as a silent abort, not a failure.
	ErrCancelled = errors.New("capture: cancelled by user")

	// ErrNoImage is returned when the capture completed without image data.
	ErrNoImage = errors.New("capture: no image data")
)

// Provider produces a single still image on demand.
type Provider interface {
	// CaptureFrame returns JPEG image data for one photo.
	CaptureFrame(ctx context.Context) ([]byte, error)
}

// Bytes wraps an already-captured photo (e.g. submitted by the browser
// camera) as a Provider.
type Bytes []byte

// CaptureFrame returns the wrapped bytes, or ErrNoImage when empty.
func (b Bytes) CaptureFrame(ctx context.Context) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrNoImage
	}
	return b, nil
}
