// Package audio synthesizes the game's feedback cues and plays them through
// the system speaker, or renders them to PCM for hosts that bring their own
// audio device.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/flapper/internal/game"
)

// Tone is a sine sweep with an exponential gain ramp.
type Tone struct {
	StartHz   float64
	EndHz     float64
	Duration  time.Duration
	StartGain float64
	EndGain   float64
}

// Cue tones. Frequencies and gains ramp exponentially from start to end.
var tones = map[game.Cue]Tone{
	game.CueFap:      {StartHz: 400, EndHz: 200, Duration: 100 * time.Millisecond, StartGain: 0.3, EndGain: 0.01},
	game.CueScore:    {StartHz: 800, EndHz: 800, Duration: 150 * time.Millisecond, StartGain: 0.2, EndGain: 0.01},
	game.CueGameOver: {StartHz: 400, EndHz: 100, Duration: 500 * time.Millisecond, StartGain: 0.3, EndGain: 0.01},
}

// CueTone returns the tone for a cue. Unknown cues yield a zero Tone.
func CueTone(c game.Cue) Tone {
	return tones[c]
}

// sweep generates a Tone sample by sample.
type sweep struct {
	tone     Tone
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

// Streamer returns a finite streamer for the tone at the given rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &sweep{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		p := float64(s.position) / float64(s.total)
		freq := expRamp(s.tone.StartHz, s.tone.EndHz, p)
		gain := expRamp(s.tone.StartGain, s.tone.EndGain, p)

		val := math.Sin(2*math.Pi*s.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// expRamp interpolates exponentially from a to b. Non-positive endpoints fall
// back to a linear ramp.
func expRamp(a, b, p float64) float64 {
	if a <= 0 || b <= 0 {
		return a + (b-a)*p
	}
	return a * math.Pow(b/a, p)
}

// newVolume scales a streamer by a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueStreamer returns the cue's tone at the given rate and volume.
func CueStreamer(c game.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	return newVolume(CueTone(c).Streamer(rate), volume)
}
