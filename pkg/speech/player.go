package speech

import (
	"context"
	"fmt"
	"os/exec"
)

// Player renders synthesized audio. Playback must stop promptly when the
// context is cancelled so a new utterance can take over the output device.
type Player interface {
	Play(ctx context.Context, result *AudioResult, volume float64) error
}

// ExecPlayer plays audio by piping it into an external player process
// (ffplay by default). Cancelling the context kills the process.
type ExecPlayer struct {
	binary string
}

// NewExecPlayer creates a player using the given binary, or ffplay when
// empty.
func NewExecPlayer(binary string) *ExecPlayer {
	if binary == "" {
		binary = "ffplay"
	}
	return &ExecPlayer{binary: binary}
}

// Play pipes the audio buffer to the player process and waits for it to
// finish or for ctx cancellation.
func (p *ExecPlayer) Play(ctx context.Context, result *AudioResult, volume float64) error {
	args := []string{"-autoexit", "-nodisp", "-loglevel", "quiet"}

	if result.Format.Encoding == EncodingPCM24 {
		args = append(args,
			"-f", "s16le",
			"-ar", fmt.Sprintf("%d", result.Format.SampleRate),
			"-ch_layout", "mono",
		)
	}
	if volume > 0 && volume < 1.0 {
		args = append(args, "-volume", fmt.Sprintf("%d", int(volume*100)))
	}
	args = append(args, "-i", "-")

	cmd := exec.CommandContext(ctx, p.binary, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("speech: player stdin: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("speech: start player: %w", err)
	}

	if _, err := stdin.Write(result.Audio); err != nil {
		cmd.Process.Kill()
		return fmt.Errorf("speech: write audio: %w", err)
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil // utterance was cancelled, not a failure
		}
		return fmt.Errorf("speech: player exited: %w", err)
	}
	return nil
}

// NullPlayer discards audio. Useful for headless test runs.
type NullPlayer struct{}

// Play drops the audio buffer.
func (NullPlayer) Play(ctx context.Context, result *AudioResult, volume float64) error {
	return ctx.Err()
}
