package describe

import (
	"strings"

	"github.com/echosight/echosight/pkg/detect"
)

// MaxNarrated is the most objects a single description will mention.
const MaxNarrated = 3

// sceneTerms is the fixed denylist of abstract and scene-level labels.
// The vision service mixes concrete objects with category labels; only
// concrete objects can be narrated with a direction and distance.
// Matching is by substring on the lowercased name, so "interior design"
// and "living room" are both caught.
var sceneTerms = []string{
	"room",
	"architecture",
	"floor",
	"flooring",
	"nature",
	"art",
	"interior",
	"design",
	"indoors",
	"outdoors",
	"lighting",
	"wall",
	"building",
	"scenery",
	"pattern",
	"property",
}

// FilterObjects reduces the raw detection list to the narratable subset:
// concrete labels with at least one localized instance, in upstream
// confidence order, capped at MaxNarrated. ok is false when nothing
// qualifies; callers branch on that exactly once.
func FilterObjects(objects []detect.Object) (narratable []detect.Object, ok bool) {
	for _, obj := range objects {
		if isSceneTerm(obj.Name) {
			continue
		}
		if len(obj.Instances) == 0 {
			continue
		}
		narratable = append(narratable, obj)
		if len(narratable) == MaxNarrated {
			break
		}
	}
	return narratable, len(narratable) > 0
}

// isSceneTerm reports whether the label names a scene or abstract concept
// rather than a physical object.
func isSceneTerm(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range sceneTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
