package detect

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// Feature types requested from the Cloud Vision API.
const (
	featureObjects = "OBJECT_LOCALIZATION"
	featureLabels  = "LABEL_DETECTION"
)

// GoogleVision implements Detector on the Cloud Vision API.
//
// Two features are requested per image: object localization (concrete
// objects with bounding polys) and label detection (scene/category labels
// without localization). Both are merged into Object records so the caller
// sees a single confidence-ranked list.
type GoogleVision struct {
	svc    *vision.Service
	logger *slog.Logger
}

// NewGoogleVision creates a Cloud Vision detector.
// If credentialsFile is empty, application default credentials are used.
func NewGoogleVision(ctx context.Context, credentialsFile string, logger *slog.Logger) (*GoogleVision, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("detect: create vision service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GoogleVision{
		svc:    svc,
		logger: logger.With("component", "detect.google"),
	}, nil
}

// DetectObjects analyzes the uploaded image at imageURI (a gs:// URI).
func (g *GoogleVision) DetectObjects(ctx context.Context, imageURI string) ([]Object, error) {
	req := &vision.AnnotateImageRequest{
		Image: &vision.Image{
			Source: &vision.ImageSource{ImageUri: imageURI},
		},
		Features: []*vision.Feature{
			{Type: featureObjects, MaxResults: MaxResults},
			{Type: featureLabels, MaxResults: MaxResults},
		},
	}

	batch := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{req},
	}

	resp, err := g.svc.Images.Annotate(batch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("detect: annotate %s: %w", imageURI, err)
	}
	if len(resp.Responses) == 0 {
		return nil, fmt.Errorf("detect: empty annotate response for %s", imageURI)
	}

	ann := resp.Responses[0]
	if ann.Error != nil {
		return nil, fmt.Errorf("detect: vision API error: %s", ann.Error.Message)
	}

	objects := MergeAnnotations(ann.LocalizedObjectAnnotations, ann.LabelAnnotations)

	g.logger.Debug("analyzed image",
		"uri", imageURI,
		"localized", len(ann.LocalizedObjectAnnotations),
		"labels", len(ann.LabelAnnotations),
		"objects", len(objects),
	)

	return objects, nil
}

// MergeAnnotations combines localized object annotations and plain label
// annotations into a single confidence-ranked Object list. Localized
// annotations with the same name are grouped into one Object with multiple
// instances; labels that duplicate a localized name are dropped. Scores are
// scaled from the API's 0-1 range to 0-100 and results below MinConfidence
// are discarded.
func MergeAnnotations(localized []*vision.LocalizedObjectAnnotation, labels []*vision.EntityAnnotation) []Object {
	byName := make(map[string]int)
	var objects []Object

	for _, loc := range localized {
		if loc == nil || loc.Name == "" {
			continue
		}
		box, ok := boxFromPoly(loc.BoundingPoly)
		if !ok {
			continue
		}

		key := strings.ToLower(loc.Name)
		if i, seen := byName[key]; seen {
			objects[i].Instances = append(objects[i].Instances, box)
			// Keep the best instance score for the merged record.
			if score := loc.Score * 100; score > objects[i].Confidence {
				objects[i].Confidence = score
			}
			continue
		}

		byName[key] = len(objects)
		objects = append(objects, Object{
			Name:       loc.Name,
			Confidence: loc.Score * 100,
			Instances:  []BoundingBox{box},
		})
	}

	for _, lbl := range labels {
		if lbl == nil || lbl.Description == "" {
			continue
		}
		key := strings.ToLower(lbl.Description)
		if _, seen := byName[key]; seen {
			continue
		}
		byName[key] = len(objects)
		objects = append(objects, Object{
			Name:       lbl.Description,
			Confidence: lbl.Score * 100,
		})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Confidence > objects[j].Confidence
	})

	kept := objects[:0]
	for _, obj := range objects {
		if obj.Confidence < MinConfidence {
			continue
		}
		kept = append(kept, obj)
		if len(kept) == MaxResults {
			break
		}
	}

	return kept
}

// boxFromPoly converts a normalized bounding poly into a BoundingBox.
// Returns false when the poly has no usable vertices.
func boxFromPoly(poly *vision.BoundingPoly) (BoundingBox, bool) {
	if poly == nil || len(poly.NormalizedVertices) == 0 {
		return BoundingBox{}, false
	}

	minX, minY := 1.0, 1.0
	maxX, maxY := 0.0, 0.0
	for _, v := range poly.NormalizedVertices {
		if v == nil {
			continue
		}
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}

	if maxX <= minX || maxY <= minY {
		return BoundingBox{}, false
	}

	return BoundingBox{
		Left:   minX,
		Top:    minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}, true
}
