package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	elevenLabsBaseURL  = "https://api.elevenlabs.io/v1"
	providerElevenLabs = "elevenlabs"
)

// ElevenLabs model IDs.
const (
	// ModelFlashV2_5 is the fastest multilingual model (~150ms latency).
	ModelFlashV2_5 = "eleven_flash_v2_5"

	// ModelTurboV2_5 is the fastest English model (~200ms latency).
	ModelTurboV2_5 = "eleven_turbo_v2_5"
)

// DefaultVoice is a neutral narration voice suitable for descriptions.
const DefaultVoice = "21m00Tcm4TlvDq8ikWAM"

// ElevenLabs implements Provider for ElevenLabs TTS.
type ElevenLabs struct {
	config  *Config
	client  *http.Client
	logger  *slog.Logger
	baseURL string
}

// NewElevenLabs creates a new ElevenLabs TTS provider.
func NewElevenLabs(opts ...Option) (*ElevenLabs, error) {
	cfg := DefaultConfig()
	cfg.VoiceID = DefaultVoice
	cfg.Apply(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = elevenLabsBaseURL
	}

	return &ElevenLabs{
		config:  cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger.With("component", "speech.elevenlabs"),
		baseURL: baseURL,
	}, nil
}

// Synthesize converts text to a complete audio buffer.
func (e *ElevenLabs) Synthesize(ctx context.Context, text string) (*AudioResult, error) {
	start := time.Now()

	url := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s",
		e.baseURL, e.config.VoiceID, e.config.OutputFormat)

	body, err := json.Marshal(e.buildPayload(text))
	if err != nil {
		return nil, WrapError(providerElevenLabs, fmt.Errorf("marshal payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, WrapError(providerElevenLabs, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("xi-api-key", e.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.doWithRetry(ctx, req, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	latency := time.Since(start).Milliseconds()

	if resp.StatusCode != http.StatusOK {
		return nil, e.parseError(resp)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WrapError(providerElevenLabs, fmt.Errorf("read response: %w", err))
	}

	e.logger.Debug("synthesized audio",
		"chars", len(text),
		"bytes", len(audio),
		"latency_ms", latency,
		"model", e.config.ModelID,
	)

	return &AudioResult{
		Audio:     audio,
		Format:    e.outputFormat(),
		CharCount: len(text),
		LatencyMs: latency,
	}, nil
}

// Health verifies the API key by listing voices.
func (e *ElevenLabs) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/voices", nil)
	if err != nil {
		return WrapError(providerElevenLabs, err)
	}
	req.Header.Set("xi-api-key", e.config.APIKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return WrapError(providerElevenLabs, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return e.parseError(resp)
	}
	return nil
}

// Close releases resources. The HTTP client has nothing to release.
func (e *ElevenLabs) Close() error {
	return nil
}

// buildPayload maps narration settings onto the ElevenLabs request.
// Rate maps to voice_settings.speed; pitch has no ElevenLabs equivalent
// and volume is applied at playback.
func (e *ElevenLabs) buildPayload(text string) map[string]any {
	voiceSettings := map[string]any{
		"stability":        0.5,
		"similarity_boost": 0.75,
	}
	if r := e.config.Settings.Rate; r > 0 && r != 1.0 {
		voiceSettings["speed"] = r
	}

	return map[string]any{
		"text":           text,
		"model_id":       e.config.ModelID,
		"voice_settings": voiceSettings,
	}
}

// doWithRetry retries rate-limited and server-side failures. The request
// body must be re-supplied on each attempt.
func (e *ElevenLabs) doWithRetry(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= e.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, WrapError(providerElevenLabs, ctx.Err())
			case <-time.After(e.config.RetryDelay * time.Duration(attempt)):
			}
			req = req.Clone(ctx)
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := e.client.Do(req)
		if err != nil {
			lastErr = WrapError(providerElevenLabs, err)
			continue
		}

		apiErr, retryable := e.checkRetryable(resp)
		if apiErr == nil {
			return resp, nil
		}
		if !retryable {
			return resp, nil // caller parses the error body
		}
		resp.Body.Close()
		lastErr = apiErr
	}

	return nil, lastErr
}

// checkRetryable inspects the status without consuming the body.
func (e *ElevenLabs) checkRetryable(resp *http.Response) (error, bool) {
	if resp.StatusCode == http.StatusOK {
		return nil, false
	}
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Provider:   providerElevenLabs,
	}
	return apiErr, apiErr.IsRetryable()
}

// parseError extracts a structured error from a failed response.
func (e *ElevenLabs) parseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Detail struct {
			Message string `json:"message"`
		} `json:"detail"`
	}
	msg := string(raw)
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail.Message != "" {
		msg = body.Detail.Message
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Provider:   providerElevenLabs,
	}
}

// outputFormat returns the configured audio format metadata.
func (e *ElevenLabs) outputFormat() AudioFormat {
	switch e.config.OutputFormat {
	case EncodingMP3:
		return AudioFormat{Encoding: EncodingMP3, SampleRate: 44100, Channels: 1}
	default:
		return AudioFormat{Encoding: EncodingPCM24, SampleRate: 24000, Channels: 1}
	}
}
