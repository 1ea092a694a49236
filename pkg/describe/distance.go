package describe

import (
	"fmt"

	"github.com/echosight/echosight/pkg/detect"
)

// Area thresholds for the size-based distance heuristic. An object's share
// of the frame correlates inversely with its distance; this is a coarse
// heuristic, not a calibrated depth model. Buckets are checked largest
// first so they never overlap.
const (
	areaVeryNear = 0.30 // 2 to 3 feet
	areaNear     = 0.15 // 4 to 6 feet
	areaMid      = 0.08 // 8 to 10 feet
	areaFar      = 0.04 // 12 to 15 feet
)

// SceneDistance is an optional scene-wide measured distance in feet,
// produced by hardware depth sensing. Valid is false when no sensor is
// present or the read failed.
type SceneDistance struct {
	Feet  float64
	Valid bool
}

// MeasuredFeet returns a valid SceneDistance.
func MeasuredFeet(feet float64) SceneDistance {
	return SceneDistance{Feet: feet, Valid: true}
}

// DistancePhrase estimates a spoken distance range for one object from its
// bounding box area.
func DistancePhrase(box detect.BoundingBox) string {
	area := box.Area()
	switch {
	case area > areaVeryNear:
		return "2 to 3 feet"
	case area > areaNear:
		return "4 to 6 feet"
	case area > areaMid:
		return "8 to 10 feet"
	case area > areaFar:
		return "12 to 15 feet"
	default:
		return "more than 15 feet"
	}
}

// MeasuredLead formats the leading sentence for a measured scene distance,
// rounded to the nearest 0.1 feet. The measurement describes whatever is
// centered in frame, so it is narrated once for the scene and per-object
// estimates are suppressed.
func MeasuredLead(d SceneDistance) string {
	return fmt.Sprintf("Objects are approximately %.1f feet away. ", d.Feet)
}
