package detect

import (
	"context"
	"sync"
)

// Mock implements Detector for testing.
type Mock struct {
	// DetectFunc is called when DetectObjects is invoked.
	// If nil, returns no objects.
	DetectFunc func(ctx context.Context, imageURI string) ([]Object, error)

	mu   sync.Mutex
	uris []string
}

// DetectObjects calls DetectFunc and records the requested URI.
func (m *Mock) DetectObjects(ctx context.Context, imageURI string) ([]Object, error) {
	m.mu.Lock()
	m.uris = append(m.uris, imageURI)
	m.mu.Unlock()

	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, imageURI)
	}
	return nil, nil
}

// Requests returns the image URIs passed to DetectObjects.
func (m *Mock) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.uris))
	copy(out, m.uris)
	return out
}
