// Package storage uploads captured photos to cloud object storage.
//
// The vision service analyzes images by storage URI, so every cycle
// uploads its capture under a fresh key before requesting analysis.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Uploader stores a captured image under the given key.
type Uploader interface {
	// Upload writes data under key and returns the URI the vision
	// service should analyze.
	Upload(ctx context.Context, key string, data []byte) (uri string, err error)
}

// NewCaptureKey returns a fresh object key for one capture.
// Keys are never reused; nothing is cached across cycles.
func NewCaptureKey() string {
	return fmt.Sprintf("captures/%s.jpg", uuid.NewString())
}
