package desktop

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/flapper/internal/audio"
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
)

// Sound plays cues through the Ebitengine audio context. Cue PCM is rendered
// once up front; each Play starts a short-lived player.
type Sound struct {
	ctx    *ebaudio.Context
	pcm    map[game.Cue][]byte
	volume float64
	muted  bool
}

// NewSound creates the audio context. Ebitengine allows a single context per
// process, so only one Sound may exist.
func NewSound(cfg config.AudioConfig, volume float64, muted bool) *Sound {
	s := &Sound{
		ctx:    ebaudio.NewContext(cfg.SampleRate),
		pcm:    make(map[game.Cue][]byte, len(game.Cues)),
		volume: volume,
		muted:  muted || !cfg.Enabled,
	}
	for _, c := range game.Cues {
		s.pcm[c] = audio.RenderPCM(c, cfg.SampleRate, 1)
	}
	return s
}

// Play implements game.AudioSink.
func (s *Sound) Play(c game.Cue) {
	if s.muted {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.pcm[c])
	p.SetVolume(s.volume)
	p.Play()
}

// ToggleMute flips the mute flag and returns the new state.
func (s *Sound) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Muted reports whether cues are silenced.
func (s *Sound) Muted() bool {
	return s.muted
}
