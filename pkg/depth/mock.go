package depth

import "context"

// Mock implements Sensor for testing.
type Mock struct {
	// AvailableResult is returned by Available.
	AvailableResult bool

	// ReadFunc is called when ReadCenterDistance is invoked.
	// If nil, no reading is produced.
	ReadFunc func(ctx context.Context) (float64, bool)
}

// Available returns AvailableResult.
func (m *Mock) Available(ctx context.Context) bool {
	return m.AvailableResult
}

// ReadCenterDistance calls ReadFunc.
func (m *Mock) ReadCenterDistance(ctx context.Context) (float64, bool) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx)
	}
	return 0, false
}

// Fixed returns an available sensor that always reads meters.
func Fixed(meters float64) *Mock {
	return &Mock{
		AvailableResult: true,
		ReadFunc: func(ctx context.Context) (float64, bool) {
			return meters, true
		},
	}
}

// Failing returns an available sensor whose reads always fail.
func Failing() *Mock {
	return &Mock{AvailableResult: true}
}
