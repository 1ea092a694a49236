package describe_test

import (
	"testing"

	"github.com/echosight/echosight/pkg/describe"
	"github.com/echosight/echosight/pkg/detect"
)

// areaBox returns a full-height box covering exactly the given frame area,
// so boundary comparisons are not disturbed by floating-point drift.
func areaBox(area float64) detect.BoundingBox {
	return detect.BoundingBox{Left: 0, Top: 0, Width: area, Height: 1}
}

func TestDistancePhrase(t *testing.T) {
	cases := []struct {
		area float64
		want string
	}{
		{0.50, "2 to 3 feet"},
		{0.31, "2 to 3 feet"},
		{0.30, "4 to 6 feet"}, // boundary: not strictly greater
		{0.16, "4 to 6 feet"},
		{0.15, "8 to 10 feet"},
		{0.09, "8 to 10 feet"},
		{0.08, "12 to 15 feet"},
		{0.05, "12 to 15 feet"},
		{0.04, "more than 15 feet"},
		{0.01, "more than 15 feet"},
	}

	for _, tc := range cases {
		got := describe.DistancePhrase(areaBox(tc.area))
		if got != tc.want {
			t.Errorf("area %.2f: expected %q, got %q", tc.area, tc.want, got)
		}
	}
}

func TestDistanceBucketMonotonicity(t *testing.T) {
	// Distance bucket never gets nearer as area shrinks.
	order := map[string]int{
		"2 to 3 feet":       0,
		"4 to 6 feet":       1,
		"8 to 10 feet":      2,
		"12 to 15 feet":     3,
		"more than 15 feet": 4,
	}

	prev := -1
	for area := 0.60; area > 0.005; area -= 0.005 {
		rank, ok := order[describe.DistancePhrase(areaBox(area))]
		if !ok {
			t.Fatalf("unknown phrase for area %.3f", area)
		}
		if rank < prev {
			t.Fatalf("bucket got nearer as area shrank to %.3f", area)
		}
		prev = rank
	}
}

func TestMeasuredLead(t *testing.T) {
	cases := []struct {
		feet float64
		want string
	}{
		{4.0, "Objects are approximately 4.0 feet away. "},
		{4.16, "Objects are approximately 4.2 feet away. "},
		{12.34, "Objects are approximately 12.3 feet away. "},
	}

	for _, tc := range cases {
		got := describe.MeasuredLead(describe.MeasuredFeet(tc.feet))
		if got != tc.want {
			t.Errorf("feet %.2f: expected %q, got %q", tc.feet, tc.want, got)
		}
	}
}
