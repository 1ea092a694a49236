package config_test

import (
	"errors"
	"testing"

	"github.com/echosight/echosight/internal/config"
)

func TestValidate(t *testing.T) {
	t.Run("missing bucket", func(t *testing.T) {
		cfg := config.Default()
		cfg.ElevenLabsKey = "key"

		err := cfg.Validate()
		var cerr *config.ConfigError
		if !errors.As(err, &cerr) || cerr.Field != "Bucket" {
			t.Errorf("expected Bucket config error, got %v", err)
		}
	})

	t.Run("missing TTS key", func(t *testing.T) {
		cfg := config.Default()
		cfg.Bucket = "captures-bucket"

		err := cfg.Validate()
		var cerr *config.ConfigError
		if !errors.As(err, &cerr) || cerr.Field != "ElevenLabsKey" {
			t.Errorf("expected ElevenLabsKey config error, got %v", err)
		}
	})

	t.Run("complete config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Bucket = "captures-bucket"
		cfg.ElevenLabsKey = "key"

		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ECHOSIGHT_BUCKET", "env-bucket")
	t.Setenv("ELEVENLABS_API_KEY", "env-key")
	t.Setenv("ELEVENLABS_VOICE_ID", "env-voice")
	t.Setenv("DEPTH_SENSOR_URL", "http://lidar.local")

	cfg := config.Default()
	cfg.LoadEnv()

	if cfg.Bucket != "env-bucket" {
		t.Errorf("bucket not loaded: %q", cfg.Bucket)
	}
	if cfg.ElevenLabsKey != "env-key" {
		t.Errorf("API key not loaded: %q", cfg.ElevenLabsKey)
	}
	if cfg.VoiceID != "env-voice" {
		t.Errorf("voice not loaded: %q", cfg.VoiceID)
	}
	if cfg.DepthSensorURL != "http://lidar.local" {
		t.Errorf("sensor URL not loaded: %q", cfg.DepthSensorURL)
	}

	t.Run("flag value wins over env", func(t *testing.T) {
		cfg := config.Default()
		cfg.VoiceID = "flag-voice"
		cfg.LoadEnv()
		if cfg.VoiceID != "flag-voice" {
			t.Errorf("flag value overridden: %q", cfg.VoiceID)
		}
	})
}
