package describe_test

import (
	"testing"

	"github.com/echosight/echosight/pkg/describe"
	"github.com/echosight/echosight/pkg/detect"
)

func box(left, top, w, h float64) detect.BoundingBox {
	return detect.BoundingBox{Left: left, Top: top, Width: w, Height: h}
}

func localized(name string, confidence float64) detect.Object {
	return detect.Object{
		Name:       name,
		Confidence: confidence,
		Instances:  []detect.BoundingBox{box(0.4, 0.4, 0.2, 0.2)},
	}
}

func TestFilterObjects(t *testing.T) {
	t.Run("scene terms excluded regardless of confidence", func(t *testing.T) {
		for _, name := range []string{
			"Room", "Living Room", "Architecture", "Floor", "Nature",
			"Art", "Interior Design", "Wall", "Lighting",
		} {
			objs, ok := describe.FilterObjects([]detect.Object{localized(name, 99)})
			if ok || len(objs) != 0 {
				t.Errorf("expected %q to be excluded, got %v", name, objs)
			}
		}
	})

	t.Run("matching is case-insensitive substring", func(t *testing.T) {
		_, ok := describe.FilterObjects([]detect.Object{localized("BALLROOM", 95)})
		if ok {
			t.Error("expected BALLROOM to match denylisted substring")
		}
	})

	t.Run("objects without instances excluded", func(t *testing.T) {
		objs, ok := describe.FilterObjects([]detect.Object{
			{Name: "Chair", Confidence: 98},
		})
		if ok || len(objs) != 0 {
			t.Errorf("expected instance-less object excluded, got %v", objs)
		}
	})

	t.Run("cap at three preserving order", func(t *testing.T) {
		input := []detect.Object{
			localized("Person", 99),
			localized("Chair", 95),
			localized("Bottle", 90),
			localized("Laptop", 85),
		}
		objs, ok := describe.FilterObjects(input)
		if !ok {
			t.Fatal("expected qualifying objects")
		}
		if len(objs) != 3 {
			t.Fatalf("expected 3 objects, got %d", len(objs))
		}
		for i, want := range []string{"Person", "Chair", "Bottle"} {
			if objs[i].Name != want {
				t.Errorf("position %d: expected %s, got %s", i, want, objs[i].Name)
			}
		}
	})

	t.Run("excluded labels do not consume cap slots", func(t *testing.T) {
		input := []detect.Object{
			localized("Room", 99),
			{Name: "Table", Confidence: 97}, // no instances
			localized("Person", 96),
			localized("Chair", 95),
			localized("Bottle", 90),
		}
		objs, ok := describe.FilterObjects(input)
		if !ok || len(objs) != 3 {
			t.Fatalf("expected 3 survivors, got %v", objs)
		}
		if objs[0].Name != "Person" || objs[2].Name != "Bottle" {
			t.Errorf("unexpected survivors: %v", objs)
		}
	})

	t.Run("empty input signals no objects", func(t *testing.T) {
		objs, ok := describe.FilterObjects(nil)
		if ok || objs != nil {
			t.Errorf("expected (nil, false), got (%v, %v)", objs, ok)
		}
	})
}
