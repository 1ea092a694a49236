// Package depth reads a scene distance from an optional hardware sensor.
//
// When a LiDAR-style sensor is present it reports the distance to whatever
// is centered in the camera view. Availability is probed once at startup;
// per cycle a fresh scalar is read. A failed read is never an error to the
// caller: the describer falls back to its size-based estimate.
package depth

import "context"

// MetersToFeet converts a sensor reading to the narration unit.
const MetersToFeet = 3.28084

// Sensor is the hardware depth collaborator.
type Sensor interface {
	// Available reports whether the sensor is usable.
	// Queried once at startup; the result is cached by the caller.
	Available(ctx context.Context) bool

	// ReadCenterDistance returns the distance in meters to whatever is
	// centered in frame. ok is false on a failed read; implementations
	// never return an error.
	ReadCenterDistance(ctx context.Context) (meters float64, ok bool)
}

// None is the absent-sensor implementation.
type None struct{}

// Available always reports false.
func (None) Available(ctx context.Context) bool { return false }

// ReadCenterDistance never produces a reading.
func (None) ReadCenterDistance(ctx context.Context) (float64, bool) { return 0, false }
