package storage

import (
	"context"
	"fmt"
	"sync"
)

// Mock implements Uploader for testing.
type Mock struct {
	// UploadFunc is called when Upload is invoked.
	// If nil, records the object and returns a mock:// URI.
	UploadFunc func(ctx context.Context, key string, data []byte) (string, error)

	mu      sync.Mutex
	objects map[string][]byte
}

// Upload calls UploadFunc, or stores the object in memory.
func (m *Mock) Upload(ctx context.Context, key string, data []byte) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, data)
	}

	m.mu.Lock()
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = append([]byte(nil), data...)
	m.mu.Unlock()

	return fmt.Sprintf("mock://%s", key), nil
}

// Object returns the stored bytes for key, if any.
func (m *Mock) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

// Count returns how many objects were stored.
func (m *Mock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
