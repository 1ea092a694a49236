package speech

import (
	"context"
	"sync"
	"time"
)

// Mock implements Provider for testing.
// All methods can be customized via function fields.
type Mock struct {
	// SynthesizeFunc is called when Synthesize is invoked.
	// If nil, returns silent audio of appropriate length.
	SynthesizeFunc func(ctx context.Context, text string) (*AudioResult, error)

	// HealthFunc is called when Health is invoked.
	// If nil, returns nil (healthy).
	HealthFunc func(ctx context.Context) error

	mu    sync.Mutex
	texts []string
}

// NewMock creates a mock provider producing silent PCM audio.
func NewMock() *Mock {
	return &Mock{
		SynthesizeFunc: func(ctx context.Context, text string) (*AudioResult, error) {
			// ~20ms of 24kHz PCM16 per character gives roughly
			// natural speech pacing.
			silence := make([]byte, len(text)*960)
			return &AudioResult{
				Audio:     silence,
				Format:    AudioFormat{Encoding: EncodingPCM24, SampleRate: 24000, Channels: 1},
				CharCount: len(text),
				LatencyMs: 10,
			}, nil
		},
	}
}

// WithError returns a mock whose calls all fail with err.
func WithError(err error) *Mock {
	return &Mock{
		SynthesizeFunc: func(ctx context.Context, text string) (*AudioResult, error) {
			return nil, WrapError("mock", err)
		},
		HealthFunc: func(ctx context.Context) error {
			return WrapError("mock", err)
		},
	}
}

// Synthesize calls SynthesizeFunc and records the text.
func (m *Mock) Synthesize(ctx context.Context, text string) (*AudioResult, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()

	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text)
	}
	return nil, WrapError("mock", ErrProviderUnavailable)
}

// Health calls HealthFunc.
func (m *Mock) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// Close is a no-op.
func (m *Mock) Close() error {
	return nil
}

// Spoken returns the texts passed to Synthesize so far.
func (m *Mock) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.texts))
	copy(out, m.texts)
	return out
}

// WaitForSpoken polls until n texts were synthesized or the timeout
// elapses. Convenience for fire-and-forget Speaker tests.
func (m *Mock) WaitForSpoken(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if len(m.Spoken()) >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return len(m.Spoken()) >= n
}
