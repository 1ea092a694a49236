package detect_test

import (
	"testing"

	vision "google.golang.org/api/vision/v1"

	"github.com/echosight/echosight/pkg/detect"
)

func poly(left, top, right, bottom float64) *vision.BoundingPoly {
	return &vision.BoundingPoly{
		NormalizedVertices: []*vision.NormalizedVertex{
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
			{X: left, Y: bottom},
		},
	}
}

func TestBoundingBoxHelpers(t *testing.T) {
	box := detect.BoundingBox{Left: 0.1, Top: 0.4, Width: 0.3, Height: 0.3}

	cx, cy := box.Center()
	if cx != 0.25 || cy != 0.55 {
		t.Errorf("unexpected center: (%v, %v)", cx, cy)
	}
	if area := box.Area(); area < 0.089 || area > 0.091 {
		t.Errorf("unexpected area: %v", area)
	}
}

func TestMergeAnnotations(t *testing.T) {
	t.Run("localized objects carry instances", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			[]*vision.LocalizedObjectAnnotation{
				{Name: "Chair", Score: 0.92, BoundingPoly: poly(0.1, 0.4, 0.4, 0.7)},
			},
			nil,
		)
		if len(objs) != 1 {
			t.Fatalf("expected 1 object, got %d", len(objs))
		}
		if objs[0].Name != "Chair" || len(objs[0].Instances) != 1 {
			t.Errorf("unexpected object: %+v", objs[0])
		}
		if objs[0].Confidence < 91.9 || objs[0].Confidence > 92.1 {
			t.Errorf("score not scaled to 0-100: %v", objs[0].Confidence)
		}

		box := objs[0].Instances[0]
		if box.Left != 0.1 || box.Top != 0.4 {
			t.Errorf("unexpected box origin: %+v", box)
		}
		if box.Width < 0.29 || box.Width > 0.31 {
			t.Errorf("unexpected box width: %v", box.Width)
		}
	})

	t.Run("same name grouped into one object", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			[]*vision.LocalizedObjectAnnotation{
				{Name: "Chair", Score: 0.92, BoundingPoly: poly(0.1, 0.4, 0.4, 0.7)},
				{Name: "chair", Score: 0.85, BoundingPoly: poly(0.6, 0.4, 0.9, 0.7)},
			},
			nil,
		)
		if len(objs) != 1 {
			t.Fatalf("expected grouped object, got %d", len(objs))
		}
		if len(objs[0].Instances) != 2 {
			t.Errorf("expected 2 instances, got %d", len(objs[0].Instances))
		}
	})

	t.Run("labels arrive without instances", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			nil,
			[]*vision.EntityAnnotation{
				{Description: "Interior Design", Score: 0.96},
			},
		)
		if len(objs) != 1 || len(objs[0].Instances) != 0 {
			t.Errorf("expected instance-less label object, got %+v", objs)
		}
	})

	t.Run("labels duplicating localized names dropped", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			[]*vision.LocalizedObjectAnnotation{
				{Name: "Chair", Score: 0.92, BoundingPoly: poly(0.1, 0.4, 0.4, 0.7)},
			},
			[]*vision.EntityAnnotation{
				{Description: "chair", Score: 0.88},
			},
		)
		if len(objs) != 1 {
			t.Errorf("expected duplicate label dropped, got %+v", objs)
		}
	})

	t.Run("low confidence dropped", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			[]*vision.LocalizedObjectAnnotation{
				{Name: "Bottle", Score: 0.60, BoundingPoly: poly(0.1, 0.1, 0.2, 0.2)},
			},
			[]*vision.EntityAnnotation{
				{Description: "Table", Score: 0.69},
			},
		)
		if len(objs) != 0 {
			t.Errorf("expected sub-threshold results dropped, got %+v", objs)
		}
	})

	t.Run("sorted by confidence descending", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			[]*vision.LocalizedObjectAnnotation{
				{Name: "Bottle", Score: 0.80, BoundingPoly: poly(0.1, 0.1, 0.2, 0.2)},
			},
			[]*vision.EntityAnnotation{
				{Description: "Furniture", Score: 0.95},
			},
		)
		if len(objs) != 2 {
			t.Fatalf("expected 2 objects, got %d", len(objs))
		}
		if objs[0].Name != "Furniture" || objs[1].Name != "Bottle" {
			t.Errorf("not confidence ordered: %+v", objs)
		}
	})

	t.Run("degenerate poly skipped", func(t *testing.T) {
		objs := detect.MergeAnnotations(
			[]*vision.LocalizedObjectAnnotation{
				{Name: "Chair", Score: 0.92, BoundingPoly: &vision.BoundingPoly{}},
			},
			nil,
		)
		if len(objs) != 0 {
			t.Errorf("expected degenerate annotation skipped, got %+v", objs)
		}
	})
}
