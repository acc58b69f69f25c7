package game

// Collides reports whether the bird has left the canvas or overlaps a pipe
// segment outside its gate. Boxes are axis-aligned; rotation is ignored.
func Collides(s *Session) bool {
	b := s.bird.Box()
	if !b.Within(s.cfg.Canvas.Width, s.cfg.Canvas.Height) {
		return true
	}

	for _, p := range s.pipes {
		top, bottom := p.Segments(s.cfg.Pipes, s.cfg.Canvas.Height)
		if b.Intersects(top) || b.Intersects(bottom) {
			return true
		}
	}
	return false
}
