package speech

import (
	"context"
	"log/slog"
	"sync"
)

// Speaker speaks descriptions aloud. Each Say cancels whatever was still
// playing: the user asked for a fresh description, so stale narration is
// noise. Playback runs in its own goroutine and never blocks the caller.
type Speaker struct {
	provider Provider
	player   Player
	settings Settings
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSpeaker creates a speaker over the given provider and player.
func NewSpeaker(provider Provider, player Player, logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Speaker{
		provider: provider,
		player:   player,
		settings: DefaultSettings(),
		logger:   logger.With("component", "speech.speaker"),
	}
}

// SetSettings replaces the narration settings for subsequent utterances.
func (s *Speaker) SetSettings(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// Say cancels any in-progress utterance and starts speaking text.
// It returns as soon as the utterance is scheduled.
func (s *Speaker) Say(text string) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	settings := s.settings
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		result, err := s.provider.Synthesize(ctx, text)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn("synthesis failed", "error", err)
			}
			return
		}

		if err := s.player.Play(ctx, result, settings.Volume); err != nil {
			s.logger.Warn("playback failed", "error", err)
		}
	}()
}

// Stop cancels any in-progress utterance.
func (s *Speaker) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
}

// Close stops playback and waits for the utterance goroutine to exit.
func (s *Speaker) Close() error {
	s.Stop()
	s.wg.Wait()
	return s.provider.Close()
}
