package speech_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/echosight/echosight/pkg/speech"
)

// recordingPlayer records played utterances and blocks until its context
// is cancelled when hold is set.
type recordingPlayer struct {
	mu        sync.Mutex
	played    int
	cancelled int
	hold      bool
}

func (p *recordingPlayer) Play(ctx context.Context, result *speech.AudioResult, volume float64) error {
	p.mu.Lock()
	p.played++
	hold := p.hold
	p.mu.Unlock()

	if hold {
		<-ctx.Done()
		p.mu.Lock()
		p.cancelled++
		p.mu.Unlock()
	}
	return nil
}

func (p *recordingPlayer) counts() (played, cancelled int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.cancelled
}

func TestSpeakerFireAndForget(t *testing.T) {
	mock := speech.NewMock()
	player := &recordingPlayer{}
	speaker := speech.NewSpeaker(mock, player, nil)
	defer speaker.Close()

	start := time.Now()
	speaker.Say("Objects detected. I see a chair in front of you.")
	if time.Since(start) > 50*time.Millisecond {
		t.Error("Say must not block on synthesis or playback")
	}

	if !mock.WaitForSpoken(1, time.Second) {
		t.Fatal("expected utterance to be synthesized")
	}
}

func TestSpeakerCancelsPriorUtterance(t *testing.T) {
	mock := speech.NewMock()
	player := &recordingPlayer{hold: true}
	speaker := speech.NewSpeaker(mock, player, nil)

	speaker.Say("first utterance")
	if !mock.WaitForSpoken(1, time.Second) {
		t.Fatal("first utterance never synthesized")
	}

	speaker.Say("second utterance")
	if !mock.WaitForSpoken(2, time.Second) {
		t.Fatal("second utterance never synthesized")
	}

	speaker.Close()

	played, cancelled := player.counts()
	if played != 2 {
		t.Errorf("expected 2 playbacks, got %d", played)
	}
	// Both were eventually cancelled: the first by the second Say, the
	// second by Close.
	if cancelled != 2 {
		t.Errorf("expected 2 cancellations, got %d", cancelled)
	}
}

func TestSpeakerStop(t *testing.T) {
	mock := speech.NewMock()
	player := &recordingPlayer{hold: true}
	speaker := speech.NewSpeaker(mock, player, nil)
	defer speaker.Close()

	speaker.Say("stop me")
	if !mock.WaitForSpoken(1, time.Second) {
		t.Fatal("utterance never synthesized")
	}

	speaker.Stop()

	deadline := time.Now().Add(time.Second)
	for {
		if _, cancelled := player.counts(); cancelled == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Stop did not cancel playback")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
