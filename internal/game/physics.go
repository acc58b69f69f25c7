package game

import "github.com/vovakirdan/flapper/internal/core"

// UpdateBird integrates one frame of bird physics: gravity, position, tilt.
// Y is never clamped; leaving the canvas is detected by Collides.
func UpdateBird(s *Session) {
	b := &s.bird
	b.Velocity += s.cfg.Bird.Gravity
	b.Y += b.Velocity

	tilt := s.cfg.Bird.Tilt
	b.Rotation = core.ClampF(b.Velocity*tilt.Factor, tilt.Min, tilt.Max)
}
