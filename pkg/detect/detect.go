// Package detect provides cloud object detection for captured photos.
//
// A Detector analyzes a previously uploaded image and returns labeled
// objects. Each label carries a confidence score (0-100) and zero or more
// localized instances; scene-level labels ("Room", "Lighting") typically
// arrive without instances and are filtered out downstream.
package detect

import "context"

// Fixed detection parameters. These match the upstream service request and
// are deliberately not user-configurable.
const (
	// MaxResults caps how many labels are requested per image.
	MaxResults = 10

	// MinConfidence is the minimum label confidence (0-100) to keep.
	MinConfidence = 70
)

// BoundingBox is an axis-aligned rectangle with dimensions given as
// normalized ratios of the image size (0-1).
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the box.
func (b BoundingBox) Center() (cx, cy float64) {
	return b.Left + b.Width/2, b.Top + b.Height/2
}

// Area returns the fraction of the frame the box covers.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// Object is one recognized concept in an image.
type Object struct {
	// Name is the free-form label. Matching is case-insensitive.
	Name string `json:"name"`

	// Confidence in the 0-100 range.
	Confidence float64 `json:"confidence"`

	// Instances are the localized occurrences of this label.
	// May be empty for scene/category labels.
	Instances []BoundingBox `json:"instances"`
}

// Detector analyzes an uploaded image identified by its storage URI.
// Implementations must return objects in confidence order (highest first).
type Detector interface {
	DetectObjects(ctx context.Context, imageURI string) ([]Object, error)
}
