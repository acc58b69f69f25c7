package game

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/flapper/internal/canvas"
)

func TestDrawScene(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	s.pipes = append(s.pipes, Pipe{X: 300, TopHeight: 100})

	r := canvas.NewRaster(400, 600)
	NewDriver(s).Draw(canvas.New(r, 400, 600))

	tests := []struct {
		name     string
		x, y     int
		expected color.NRGBA
	}{
		{"sky", 10, 1, skyTop},
		{"sand", 10, 599, sandBase},
		{"top pipe", 330, 50, pipeFill.Color},
		{"bottom pipe", 330, 500, pipeFill.Color},
		{"pipe outline", 300, 50, pipeStroke.Color},
		{"bird body", 110, 268, birdBody.Color},
		{"bird pupil", 132, 260, birdPupil.Color},
		{"beak", 142, 265, birdBeak.Color},
	}
	for _, tc := range tests {
		if got := r.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("%s at (%d, %d) = %v, expected %v", tc.name, tc.x, tc.y, got, tc.expected)
		}
	}

	// The gate between the caps stays background.
	if got := r.At(330, 200); got == pipeFill.Color || got == pipeStroke.Color {
		t.Errorf("gate at (330, 200) painted as pipe: %v", got)
	}
}

func TestDrawParticlesTranslucent(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	s.particles = append(s.particles, Particle{X: 50, Y: 50, Size: 6, Life: 0.5, Decay: 0.03})

	r := canvas.NewRaster(400, 600)
	DrawParticles(canvas.New(r, 400, 600), s)

	if got := r.At(52, 52); got.A == 0 || got.A == 255 {
		t.Errorf("particle pixel alpha = %d, expected translucent", got.A)
	}
}
