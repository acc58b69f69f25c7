package game

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/flapper/internal/canvas"
)

// ErrStop tells Run to return cleanly. Schedulers return it (possibly wrapped)
// when the host wants the loop to end.
var ErrStop = errors.New("game: stop")

// Scheduler paces frames. Wait blocks until the next frame is due.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context) error

func (f SchedulerFunc) Wait(ctx context.Context) error { return f(ctx) }

// Driver runs the per-frame pipeline over a session.
type Driver struct {
	s *Session
}

// NewDriver creates a driver for s.
func NewDriver(s *Session) *Driver {
	return &Driver{s: s}
}

// Session returns the driven session.
func (d *Driver) Session() *Session {
	return d.s
}

// Update advances the simulation by one frame.
//
// While playing: frame counter, bird, pipes. Particles move while playing and,
// when configured, in every other state too. Collision is checked last and
// only while playing.
func (d *Driver) Update() {
	s := d.s
	playing := s.state == StatePlaying
	if playing {
		s.frames++
		UpdateBird(s)
		UpdatePipes(s)
	}
	if playing || s.cfg.Particles.AnimateWhenIdle {
		UpdateParticles(s)
	}
	if playing && Collides(s) {
		s.endRound()
	}
}

// Draw renders the current state without advancing it.
func (d *Driver) Draw(dst canvas.Surface) {
	dst.Clear()
	DrawBackground(dst, d.s.cfg)
	DrawEntities(dst, d.s)
}

// Frame is one full cycle: clear, background, update, entities.
// A nil surface runs the update only.
func (d *Driver) Frame(dst canvas.Surface) {
	if dst == nil {
		d.Update()
		return
	}
	dst.Clear()
	DrawBackground(dst, d.s.cfg)
	d.Update()
	DrawEntities(dst, d.s)
}

// Run loops Frame, yielding to sched between frames, until the scheduler
// fails or ctx is done. ErrStop ends the loop with a nil error.
func (d *Driver) Run(ctx context.Context, sched Scheduler, dst canvas.Surface) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Frame(dst)
		if err := sched.Wait(ctx); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}

// Ticker is a fixed-rate Scheduler.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a scheduler firing fps times per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the ticker.
func (t *Ticker) Stop() {
	t.t.Stop()
}

// Unthrottled runs frames back to back.
type Unthrottled struct{}

func (Unthrottled) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Limit wraps a scheduler so that Run stops after n frames.
func Limit(next Scheduler, n int) Scheduler {
	count := 0
	return SchedulerFunc(func(ctx context.Context) error {
		count++
		if count >= n {
			return ErrStop
		}
		return next.Wait(ctx)
	})
}
