package describe

import "github.com/echosight/echosight/pkg/detect"

// Center-zone boundaries for direction phrasing. The middle 40% of the
// frame in each axis counts as centered.
const (
	zoneLow  = 0.3
	zoneHigh = 0.7
)

// DirectionPhrase describes where the box sits relative to the viewer,
// e.g. "on your left", "above and on your right", "below in front of you".
func DirectionPhrase(box detect.BoundingBox) string {
	cx, cy := box.Center()

	horizontal := "in front of you"
	centered := true
	switch {
	case cx < zoneLow:
		horizontal = "on your left"
		centered = false
	case cx > zoneHigh:
		horizontal = "on your right"
		centered = false
	}

	var vertical string
	switch {
	case cy < zoneLow:
		vertical = "above"
	case cy > zoneHigh:
		vertical = "below"
	}

	if vertical == "" {
		return horizontal
	}
	if centered {
		return vertical + " " + horizontal
	}
	return vertical + " and " + horizontal
}
