package capture

import (
	"context"
	"sync"
)

// Mock implements Provider for testing.
type Mock struct {
	// CaptureFunc is called when CaptureFrame is invoked.
	// If nil, returns a minimal JPEG header.
	CaptureFunc func(ctx context.Context) ([]byte, error)

	mu    sync.Mutex
	calls int
}

// CaptureFrame calls CaptureFunc and counts the call.
func (m *Mock) CaptureFrame(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}
	return []byte{0xff, 0xd8, 0xff, 0xd9}, nil
}

// Calls returns how many captures were requested.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Cancelled returns a Mock whose captures report user cancellation.
func Cancelled() *Mock {
	return &Mock{
		CaptureFunc: func(ctx context.Context) ([]byte, error) {
			return nil, ErrCancelled
		},
	}
}
