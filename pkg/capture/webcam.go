package capture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"
)

// Webcam implements Provider over a local camera device.
// A Webcam is safe for concurrent use, though the cycle runner only ever
// issues one capture at a time.
type Webcam struct {
	cam    *gocv.VideoCapture
	logger *slog.Logger
	mu     sync.Mutex
}

// OpenWebcam opens the camera device (0 for the default camera).
func OpenWebcam(deviceID int, logger *slog.Logger) (*Webcam, error) {
	cam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("capture: open device %d: %w", deviceID, err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Webcam{
		cam:    cam,
		logger: logger.With("component", "capture.webcam"),
	}, nil
}

// CaptureFrame grabs one frame and encodes it as JPEG.
func (w *Webcam) CaptureFrame(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	img := gocv.NewMat()
	defer img.Close()

	if ok := w.cam.Read(&img); !ok || img.Empty() {
		return nil, ErrNoImage
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, img)
	if err != nil {
		return nil, fmt.Errorf("capture: encode frame: %w", err)
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())

	w.logger.Debug("captured frame", "bytes", len(data))
	return data, nil
}

// Close releases the camera device.
func (w *Webcam) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cam.Close()
}
