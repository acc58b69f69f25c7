package game

import (
	"context"
	"errors"
	"testing"
)

func TestDriverFullRoundFloor(t *testing.T) {
	s, rec := newTestSession(fixedRand(0.5))
	d := NewDriver(s)
	s.Impulse()

	// y(n) = 250 - 9n + 0.25n(n+1); the bottom first passes 600 at n = 58.
	for f := 1; f < 58; f++ {
		d.Update()
		if s.State() != StatePlaying {
			t.Fatalf("game over too early at frame %d (y=%v)", f, s.Bird().Y)
		}
	}
	d.Update()
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v at frame 58, expected gameOver (y=%v)", s.State(), s.Bird().Y)
	}
	if s.Frames() != 58 {
		t.Errorf("Frames() = %d, expected 58", s.Frames())
	}
	if rec.cues[CueGameOver] != 1 || rec.count("final:0") != 1 {
		t.Errorf("game over side effects = %v", rec.events)
	}
}

func TestDriverFullRoundPipe(t *testing.T) {
	// Gate top at 248: the bird, flapping every 35 frames, oscillates in
	// [173.5, 250] and clips the top segment as soon as the first pipe reaches it.
	s, rec := newTestSession(fixedRand(0.9))
	d := NewDriver(s)
	s.Impulse()

	const hitFrame = 220
	for f := 1; f < hitFrame; f++ {
		if f > 1 && (f-1)%35 == 0 {
			s.Impulse()
		}
		d.Update()
		if s.State() != StatePlaying {
			t.Fatalf("game over too early at frame %d", f)
		}
	}
	d.Update()
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected gameOver at frame %d", s.State(), hitFrame)
	}
	if s.Frames() != hitFrame {
		t.Errorf("Frames() = %d, expected %d", s.Frames(), hitFrame)
	}

	// Side effects fire once even though the bird keeps overlapping.
	for i := 0; i < 30; i++ {
		d.Update()
	}
	if rec.count("showGameOver") != 1 || rec.cues[CueGameOver] != 1 || rec.count("final:0") != 1 {
		t.Errorf("game over side effects = %v", rec.events)
	}
	if s.Frames() != hitFrame {
		t.Errorf("frame counter advanced after game over: %d", s.Frames())
	}
}

func TestDriverIdleParticles(t *testing.T) {
	tests := []struct {
		name    string
		animate bool
	}{
		{"animate when idle", true},
		{"frozen when idle", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(fixedRand(0.5))
			s.cfg.Particles.AnimateWhenIdle = tc.animate
			EmitParticles(s)

			NewDriver(s).Update()

			moved := s.particles[0].Life < 1
			if moved != tc.animate {
				t.Errorf("particles moved = %v, expected %v", moved, tc.animate)
			}
			if s.Frames() != 0 {
				t.Errorf("frame counter should not advance in start state")
			}
		})
	}
}

func TestDriverRunLimit(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	s.Impulse()

	err := NewDriver(s).Run(context.Background(), Limit(Unthrottled{}, 5), nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", s.Frames())
	}
}

func TestDriverRunCanceled(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	sched := SchedulerFunc(func(ctx context.Context) error {
		frames++
		if frames == 3 {
			cancel()
		}
		return ctx.Err()
	})

	err := NewDriver(s).Run(ctx, sched, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if frames != 3 {
		t.Errorf("scheduler called %d times, expected 3", frames)
	}
}
