package audio

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
)

// ErrNoDevice is returned when no audio output can be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Speaker plays cues on the system audio device through a shared mixer.
// Play never blocks on playback; the mixer runs on the speaker goroutine.
type Speaker struct {
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool
}

// NewSpeaker initializes the speaker. Call once per process.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
	}
	s.muted.Store(!cfg.Enabled)
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues a cue on the mixer.
func (s *Speaker) Play(c game.Cue) {
	if s.muted.Load() {
		return
	}
	st := CueStreamer(c, s.rate, s.volume)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted enables or disables playback.
func (s *Speaker) SetMuted(m bool) {
	s.muted.Store(m)
}

// Muted reports whether playback is disabled.
func (s *Speaker) Muted() bool {
	return s.muted.Load()
}

// ToggleMute flips the mute state and returns the new value.
func (s *Speaker) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Close drops any queued sounds.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Silent discards every cue. Used by servers and headless runs.
type Silent struct{}

func (Silent) Play(game.Cue) {}

// Counter records how many times each cue was played.
type Counter struct {
	counts [3]atomic.Int64
}

func (c *Counter) Play(cue game.Cue) {
	if int(cue) >= 0 && int(cue) < len(c.counts) {
		c.counts[cue].Add(1)
	}
}

// Count returns the number of plays of a cue.
func (c *Counter) Count(cue game.Cue) int64 {
	if int(cue) < 0 || int(cue) >= len(c.counts) {
		return 0
	}
	return c.counts[cue].Load()
}
