package game

import (
	"slices"

	"github.com/vovakirdan/flapper/internal/config"
)

// Session is one running game: the bird, the pipes, the particles, the score
// and the state machine. It is not safe for concurrent use; the host delivers
// impulses and frames from a single goroutine.
type Session struct {
	cfg   config.Config
	rng   Rand
	audio AudioSink
	view  Presenter

	state     State
	score     int
	frames    int
	bird      Bird
	pipes     []Pipe
	particles []Particle
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source. The default is seeded with 1.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithAudio sets the cue sink.
func WithAudio(a AudioSink) Option {
	return func(s *Session) { s.audio = a }
}

// WithPresenter sets the presentation sink.
func WithPresenter(p Presenter) Option {
	return func(s *Session) { s.view = p }
}

// NewSession creates a session in the start state and shows the start panel.
func NewSession(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   NewRand(1),
		audio: NopAudio{},
		view:  NopPresenter{},
		state: StateStart,
		bird: Bird{
			X:      cfg.Bird.X,
			Y:      cfg.Bird.StartY,
			Width:  cfg.Bird.Width,
			Height: cfg.Bird.Height,
		},
		pipes:     make([]Pipe, 0, 8),
		particles: make([]Particle, 0, 64),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.view.ShowStart()
	s.view.SetScore(0)
	return s
}

// Config returns the tuning the session was created with.
func (s *Session) Config() config.Config { return s.cfg }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the number of pipes cleared this round.
func (s *Session) Score() int { return s.score }

// Frames returns the number of simulated frames this round.
func (s *Session) Frames() int { return s.frames }

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird { return s.bird }

// Pipes returns a copy of the live pipes.
func (s *Session) Pipes() []Pipe { return slices.Clone(s.pipes) }

// Particles returns a copy of the live particles.
func (s *Session) Particles() []Particle { return slices.Clone(s.particles) }

// Impulse applies the single player input. It is applied immediately and in
// full; two impulses between frames both take effect.
func (s *Session) Impulse() {
	switch s.state {
	case StateStart:
		s.state = StatePlaying
		s.view.HideStart()
		s.jump()
	case StatePlaying:
		s.jump()
	case StateGameOver:
		s.state = StatePlaying
		s.view.HideGameOver()
		s.reset()
		s.jump()
	}
}

func (s *Session) jump() {
	s.bird.Velocity = s.cfg.Bird.JumpForce
	EmitParticles(s)
	s.audio.Play(CueFap)
}

// reset restores the round to its initial condition. The state is left to
// the caller.
func (s *Session) reset() {
	s.bird.Y = s.cfg.Bird.StartY
	s.bird.Velocity = 0
	s.bird.Rotation = 0
	s.pipes = s.pipes[:0]
	s.particles = s.particles[:0]
	s.score = 0
	s.view.SetScore(0)
	s.frames = 0
}

// endRound moves to the game over state. It fires its side effects only on
// the transition itself.
func (s *Session) endRound() {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.view.ShowGameOver()
	s.view.SetFinalScore(s.score)
	s.audio.Play(CueGameOver)
}
