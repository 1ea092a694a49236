// Package config provides configuration for the echosight binary.
// Flag parsing happens in cmd/echosight; this struct is data only.
package config

import "os"

// Defaults.
const (
	DefaultAddr         = ":8080"
	DefaultCameraDevice = 0
)

// Config holds all configuration for the application.
type Config struct {
	// Addr is the web server listen address.
	Addr string

	// Debug enables verbose debug logging.
	Debug bool

	// Bucket is the cloud storage bucket for captures.
	Bucket string

	// GoogleCredentials is a service account key file path.
	// Empty means application default credentials.
	GoogleCredentials string

	// ElevenLabsKey is the TTS API key.
	ElevenLabsKey string

	// VoiceID selects the narration voice. Empty uses the default.
	VoiceID string

	// CameraDevice is the local camera index.
	CameraDevice int

	// NoCamera disables the server camera; captures must then arrive
	// from the browser.
	NoCamera bool

	// DepthSensorURL is the LiDAR bridge base URL. Empty disables
	// hardware depth sensing.
	DepthSensorURL string

	// SpeechRate is the narration speed multiplier.
	SpeechRate float64
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Addr:         DefaultAddr,
		CameraDevice: DefaultCameraDevice,
		SpeechRate:   1.0,
	}
}

// LoadEnv applies environment variable overrides.
// Call after flag parsing.
func (c *Config) LoadEnv() {
	if bucket := os.Getenv("ECHOSIGHT_BUCKET"); bucket != "" {
		c.Bucket = bucket
	}
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" && c.GoogleCredentials == "" {
		c.GoogleCredentials = creds
	}
	c.ElevenLabsKey = os.Getenv("ELEVENLABS_API_KEY")
	if voice := os.Getenv("ELEVENLABS_VOICE_ID"); voice != "" && c.VoiceID == "" {
		c.VoiceID = voice
	}
	if url := os.Getenv("DEPTH_SENSOR_URL"); url != "" && c.DepthSensorURL == "" {
		c.DepthSensorURL = url
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return &ConfigError{Field: "Bucket", Message: "ECHOSIGHT_BUCKET environment variable is required"}
	}
	if c.ElevenLabsKey == "" {
		return &ConfigError{Field: "ElevenLabsKey", Message: "ELEVENLABS_API_KEY environment variable is required"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
