// Package describe converts detected objects into a spoken description.
//
// Everything here is a pure function of its input: no I/O, no state
// between calls. The pipeline is filter (concrete, localized, capped) →
// distance bucket → direction geometry → sentence assembly. Output format
// is fixed; downstream text-to-speech reads it verbatim.
package describe

import (
	"strings"

	"github.com/echosight/echosight/pkg/detect"
)

// Fallback is spoken when nothing narratable was detected.
const Fallback = "No specific objects detected. Try pointing at a clear object like a person, chair, or bottle."

// Lead opens the description when no measured distance is available.
const Lead = "Objects detected. "

// Synthesize assembles the spoken description for the filtered objects.
// Objects must already have passed FilterObjects; each object's first
// instance box drives its distance and direction. When measured is valid,
// the leading sentence carries the scene distance and per-object distance
// phrases are suppressed entirely (the measurement only describes what is
// centered in frame, but the source of this behavior applies it to every
// object).
func Synthesize(objects []detect.Object, measured SceneDistance) string {
	if len(objects) == 0 {
		return Fallback
	}

	var b strings.Builder
	if measured.Valid {
		b.WriteString(MeasuredLead(measured))
	} else {
		b.WriteString(Lead)
	}

	for i, obj := range objects {
		if i == 0 {
			b.WriteString("I see a ")
		} else {
			b.WriteString(", a ")
		}
		b.WriteString(strings.ToLower(obj.Name))

		box := obj.Instances[0]
		if !measured.Valid {
			b.WriteString(" about ")
			b.WriteString(DistancePhrase(box))
			b.WriteString(" away")
		}
		b.WriteString(" ")
		b.WriteString(DirectionPhrase(box))
	}

	b.WriteString(".")
	return b.String()
}

// Describe is the full pipeline: filter then synthesize. It returns the
// spoken text and the objects that were narrated (nil when the fallback
// sentence was used).
func Describe(objects []detect.Object, measured SceneDistance) (string, []detect.Object) {
	narratable, ok := FilterObjects(objects)
	if !ok {
		return Fallback, nil
	}
	return Synthesize(narratable, measured), narratable
}
