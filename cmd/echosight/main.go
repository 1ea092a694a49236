// EchoSight - spoken scene descriptions for blind and low-vision users.
// Captures a photo, detects objects with a cloud vision service, and
// speaks where they are.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/echosight/echosight/internal/config"
	"github.com/echosight/echosight/internal/log"
	"github.com/echosight/echosight/pkg/capture"
	"github.com/echosight/echosight/pkg/cycle"
	"github.com/echosight/echosight/pkg/depth"
	"github.com/echosight/echosight/pkg/detect"
	"github.com/echosight/echosight/pkg/speech"
	"github.com/echosight/echosight/pkg/storage"
	"github.com/echosight/echosight/pkg/web"
)

func main() {
	cfg := parseFlags()

	level := "info"
	if cfg.Debug {
		level = "debug"
	}
	log.Init(level)

	if err := cfg.Validate(); err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		log.Error("runtime error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger := log.L()

	uploader, err := storage.NewGCS(ctx, cfg.Bucket, cfg.GoogleCredentials, logger)
	if err != nil {
		return err
	}

	detector, err := detect.NewGoogleVision(ctx, cfg.GoogleCredentials, logger)
	if err != nil {
		return err
	}

	speaker, err := buildSpeaker(cfg, logger)
	if err != nil {
		return err
	}
	defer speaker.Close()

	capturer, err := buildCapturer(cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := capturer.(io.Closer); ok {
		defer closer.Close()
	}

	// Depth session is process-wide: probed once here, torn down with
	// the process. The cycle only reads from it.
	var sensor depth.Sensor = depth.None{}
	if cfg.DepthSensorURL != "" {
		sensor = depth.NewHTTPSensor(cfg.DepthSensorURL, logger)
	}

	runner := cycle.NewRunner(ctx, capturer, uploader, detector, sensor, speaker, logger)

	server := web.NewServer(cfg.Addr, runner, logger)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		return server.Shutdown()
	case err := <-errCh:
		return err
	}
}

// buildSpeaker wires the TTS provider and playback stack.
func buildSpeaker(cfg config.Config, logger *slog.Logger) (*speech.Speaker, error) {
	opts := []speech.Option{
		speech.WithAPIKey(cfg.ElevenLabsKey),
		speech.WithLogger(logger),
	}
	if cfg.VoiceID != "" {
		opts = append(opts, speech.WithVoice(cfg.VoiceID))
	}

	settings := speech.DefaultSettings()
	settings.Rate = cfg.SpeechRate
	opts = append(opts, speech.WithSettings(settings))

	provider, err := speech.NewElevenLabs(opts...)
	if err != nil {
		return nil, err
	}

	speaker := speech.NewSpeaker(provider, speech.NewExecPlayer(""), logger)
	speaker.SetSettings(settings)
	return speaker, nil
}

// buildCapturer opens the server camera unless disabled.
func buildCapturer(cfg config.Config, logger *slog.Logger) (capture.Provider, error) {
	if cfg.NoCamera {
		// Captures must arrive from the browser; the empty provider
		// reports a capture failure if the button is pressed without
		// a photo attached.
		return capture.Bytes(nil), nil
	}
	return capture.OpenWebcam(cfg.CameraDevice, logger)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() config.Config {
	cfg := config.Default()

	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	addr := flag.String("addr", cfg.Addr, "Web server listen address")
	bucket := flag.String("bucket", "", "Cloud storage bucket for captures (overrides ECHOSIGHT_BUCKET)")
	creds := flag.String("credentials", "", "Google service account key file (overrides GOOGLE_APPLICATION_CREDENTIALS)")
	voice := flag.String("voice", "", "ElevenLabs voice ID")
	camera := flag.Int("camera", cfg.CameraDevice, "Camera device index")
	noCamera := flag.Bool("no-camera", false, "Disable the server camera (browser photos only)")
	sensorURL := flag.String("depth-sensor", "", "LiDAR bridge base URL (overrides DEPTH_SENSOR_URL)")
	rate := flag.Float64("speech-rate", cfg.SpeechRate, "Narration speed multiplier")

	flag.Parse()

	cfg.Debug = *debug
	cfg.Addr = *addr
	cfg.Bucket = *bucket
	cfg.GoogleCredentials = *creds
	cfg.VoiceID = *voice
	cfg.CameraDevice = *camera
	cfg.NoCamera = *noCamera
	cfg.DepthSensorURL = *sensorURL
	cfg.SpeechRate = *rate

	cfg.LoadEnv()
	return cfg
}
