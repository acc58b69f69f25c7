package game

import "testing"

func TestCollidesBounds(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"above ceiling", -1, true},
		{"touching ceiling", 0, false},
		{"middle", 250, false},
		{"touching floor", 570, false},
		{"below floor", 571, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(fixedRand(0.5))
			s.bird.Y = tc.y
			if got := Collides(s); got != tc.expected {
				t.Errorf("Collides() with y=%v = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestCollidesGate(t *testing.T) {
	tests := []struct {
		name     string
		pipeX    float64
		y        float64
		expected bool
	}{
		{"inside gate", 90, 250, false},
		{"touching gate top", 90, 200, false},
		{"touching gate bottom", 90, 350, false},
		{"overlaps top segment edge", 90, 190, true},
		{"inside top segment", 90, 100, true},
		{"overlaps bottom segment", 90, 351, true},
		{"pipe just ahead", 140, 100, false},
		{"pipe just behind", 40, 100, false},
		{"pipe barely overlapping", 139, 100, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(fixedRand(0.5))
			s.bird.Y = tc.y
			s.pipes = append(s.pipes, Pipe{X: tc.pipeX, TopHeight: 200})
			if got := Collides(s); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollisionIgnoresRotation(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	s.bird.Y = 570
	s.bird.Rotation = 0.8
	if Collides(s) {
		t.Error("rotation must not affect collision")
	}
}

func TestPipeSegments(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	top, bottom := Pipe{X: 90, TopHeight: 200}.Segments(s.cfg.Pipes, s.cfg.Canvas.Height)

	if top.X != 90 || top.Y != 0 || top.W != 60 || top.H != 200 {
		t.Errorf("top segment = %+v", top)
	}
	if bottom.X != 90 || bottom.Y != 380 || bottom.W != 60 || bottom.Bottom() != 600 {
		t.Errorf("bottom segment = %+v", bottom)
	}
}

func TestCollidesOutsideCanvasHorizontally(t *testing.T) {
	s, _ := newTestSession(fixedRand(0.5))
	s.bird.X = s.cfg.Canvas.Width - s.bird.Width + 1
	if !Collides(s) {
		t.Error("a bird sticking out of the right edge should collide")
	}
}
