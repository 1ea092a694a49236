// Package cycle orchestrates one capture/analyze/speak cycle.
//
// The cycle is an explicit state machine:
//
//	Idle → Capturing → Uploading → Analyzing → Speaking → Idle
//
// Exactly one cycle is permitted in flight; re-entrancy is rejected with
// ErrBusy by the state itself rather than a side flag. Each step awaits
// its collaborator; the upload must complete before analysis because the
// vision service references the uploaded object by URI. Speech initiation
// is fire-and-forget and does not block cycle completion. There is no
// retry: any collaborator failure terminates the cycle and the user
// retries manually.
package cycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/echosight/echosight/pkg/capture"
	"github.com/echosight/echosight/pkg/depth"
	"github.com/echosight/echosight/pkg/describe"
	"github.com/echosight/echosight/pkg/detect"
	"github.com/echosight/echosight/pkg/storage"
)

// Apology is spoken when a cycle fails for a reason the user should hear.
const Apology = "Analysis failed. Please try again."

// State is one phase of the capture cycle.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateUploading
	StateAnalyzing
	StateSpeaking
)

// String returns the state name for logs and the status API.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateUploading:
		return "uploading"
	case StateAnalyzing:
		return "analyzing"
	case StateSpeaking:
		return "speaking"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Speaker is the narrow speech seam the cycle needs: schedule an
// utterance and return immediately.
type Speaker interface {
	Say(text string)
}

// Result is the outcome of one successful cycle.
type Result struct {
	// Text is the spoken description.
	Text string `json:"text"`

	// Objects are the narrated objects (nil when the fallback was used).
	Objects []detect.Object `json:"objects,omitempty"`

	// MeasuredFeet is the sensor distance used, when one was read.
	MeasuredFeet float64 `json:"measured_feet,omitempty"`
}

// Runner drives capture cycles over the collaborator seams.
type Runner struct {
	capturer capture.Provider
	uploader storage.Uploader
	detector detect.Detector
	sensor   depth.Sensor
	speaker  Speaker
	logger   *slog.Logger

	// depthAvailable is probed once at construction and read-only after.
	depthAvailable bool

	// OnTransition is invoked on every state change (including the
	// return to Idle). Optional; used by the web layer for status push.
	OnTransition func(State)

	mu    sync.Mutex
	state State
}

// NewRunner wires a cycle runner. Depth availability is probed here, once;
// the runner never starts or stops the sensor session.
func NewRunner(ctx context.Context, capturer capture.Provider, uploader storage.Uploader, detector detect.Detector, sensor depth.Sensor, speaker Speaker, logger *slog.Logger) *Runner {
	if sensor == nil {
		sensor = depth.None{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Runner{
		capturer: capturer,
		uploader: uploader,
		detector: detector,
		sensor:   sensor,
		speaker:  speaker,
		logger:   logger.With("component", "cycle"),
	}
	r.depthAvailable = sensor.Available(ctx)
	r.logger.Info("cycle runner ready", "depth_sensing", r.depthAvailable)
	return r
}

// State returns the current cycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// DepthAvailable reports the startup-cached sensor availability.
func (r *Runner) DepthAvailable() bool {
	return r.depthAvailable
}

// Run executes one full cycle. It returns ErrBusy when a cycle is already
// in flight, a *Error on failure, and a Result on success. The provider
// argument overrides the runner's capturer for this cycle (nil to use the
// default); the web layer uses this for browser-submitted photos.
func (r *Runner) Run(ctx context.Context, provider capture.Provider) (*Result, error) {
	if !r.transition(StateIdle, StateCapturing) {
		return nil, ErrBusy
	}
	defer r.reset()

	if provider == nil {
		provider = r.capturer
	}

	image, err := provider.CaptureFrame(ctx)
	if err != nil {
		if errors.Is(err, capture.ErrCancelled) {
			r.logger.Debug("capture cancelled")
			return nil, wrap(KindCaptureCancelled, err)
		}
		return nil, r.fail(wrap(KindCaptureFailure, err))
	}
	if len(image) == 0 {
		return nil, r.fail(wrap(KindCaptureFailure, capture.ErrNoImage))
	}

	r.set(StateUploading)
	key := storage.NewCaptureKey()
	uri, err := r.uploader.Upload(ctx, key, image)
	if err != nil {
		return nil, r.fail(wrap(KindTransportFailure, err))
	}

	r.set(StateAnalyzing)
	objects, err := r.detector.DetectObjects(ctx, uri)
	if err != nil {
		return nil, r.fail(wrap(KindTransportFailure, err))
	}

	measured := r.readDistance(ctx)
	text, narrated := describe.Describe(objects, measured)

	r.set(StateSpeaking)
	r.speaker.Say(text)

	r.logger.Info("cycle complete",
		"detected", len(objects),
		"narrated", len(narrated),
		"measured", measured.Valid,
	)

	result := &Result{Text: text, Objects: narrated}
	if measured.Valid {
		result.MeasuredFeet = measured.Feet
	}
	return result, nil
}

// readDistance requests a fresh sensor sample when depth sensing is
// available. A failed read degrades silently to the size-based estimate.
func (r *Runner) readDistance(ctx context.Context) describe.SceneDistance {
	if !r.depthAvailable {
		return describe.SceneDistance{}
	}

	meters, ok := r.sensor.ReadCenterDistance(ctx)
	if !ok {
		r.logger.Debug("depth read failed, using size estimate")
		return describe.SceneDistance{}
	}

	return describe.MeasuredFeet(meters * depth.MetersToFeet)
}

// fail logs the failure and speaks the apology for non-silent kinds.
func (r *Runner) fail(err *Error) *Error {
	r.logger.Error("cycle failed", "kind", err.Kind.String(), "error", err.Err)
	if !err.Silent() {
		r.speaker.Say(Apology)
	}
	return err
}

// transition moves from want to next atomically, reporting success.
func (r *Runner) transition(want, next State) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != want {
		return false
	}
	r.state = next
	r.notify(next)
	return true
}

// set unconditionally advances the in-flight cycle to next.
func (r *Runner) set(next State) {
	r.mu.Lock()
	r.state = next
	r.notify(next)
	r.mu.Unlock()
}

// reset returns the cycle to Idle.
func (r *Runner) reset() {
	r.set(StateIdle)
}

// notify calls OnTransition outside of lock contention concerns: the
// callback must be fast and must not call back into the runner.
func (r *Runner) notify(s State) {
	if r.OnTransition != nil {
		r.OnTransition(s)
	}
}
