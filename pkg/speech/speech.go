// Package speech provides text-to-speech output for descriptions.
//
// A Provider converts text to audio; the Speaker on top of it owns
// playback: it cancels any in-progress utterance before starting a new
// one and plays fire-and-forget so the capture cycle never blocks on
// audio.
//
// Example usage:
//
//	provider, _ := speech.NewElevenLabs(
//	    speech.WithAPIKey(os.Getenv("ELEVENLABS_API_KEY")),
//	    speech.WithVoice("your-voice-id"),
//	)
//	defer provider.Close()
//
//	speaker := speech.NewSpeaker(provider, speech.NewExecPlayer(""), nil)
//	speaker.Say("I see a chair in front of you.")
package speech

import "context"

// Provider defines the TTS provider interface.
type Provider interface {
	// Synthesize converts text to a complete audio buffer.
	Synthesize(ctx context.Context, text string) (*AudioResult, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}

// AudioResult is a complete synthesis result.
type AudioResult struct {
	// Audio contains the raw audio data in the specified format.
	Audio []byte

	// Format describes the audio encoding.
	Format AudioFormat

	// CharCount is the number of characters synthesized.
	CharCount int

	// LatencyMs is the time to first byte in milliseconds.
	LatencyMs int64
}

// AudioFormat describes the audio encoding parameters.
type AudioFormat struct {
	// Encoding is the provider output format (e.g. pcm_24000, mp3_44100_128).
	Encoding string

	// SampleRate in Hz.
	SampleRate int

	// Channels is 1 for mono, 2 for stereo.
	Channels int
}

// Output encodings.
const (
	EncodingPCM24 = "pcm_24000"
	EncodingMP3   = "mp3_44100_128"
)

// Settings controls how descriptions are spoken. These mirror the
// narration controls a screen-reader user expects.
type Settings struct {
	// Rate is the speech speed multiplier (1.0 = normal).
	Rate float64

	// Pitch is the voice pitch multiplier (1.0 = normal).
	// Not every provider supports pitch; unsupported values are ignored.
	Pitch float64

	// Volume is the playback volume (0.0-1.0), applied by the player.
	Volume float64

	// Language is a BCP-47 tag (e.g. "en-US") used for voice selection.
	Language string
}

// DefaultSettings returns the narration defaults.
func DefaultSettings() Settings {
	return Settings{
		Rate:     1.0,
		Pitch:    1.0,
		Volume:   1.0,
		Language: "en-US",
	}
}
