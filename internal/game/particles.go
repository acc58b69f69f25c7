package game

// EmitParticles spawns one batch of particles at the bird's center.
func EmitParticles(s *Session) {
	pc := s.cfg.Particles
	cx, cy := s.bird.Center()
	for i := 0; i < pc.Count; i++ {
		s.particles = append(s.particles, Particle{
			X:     cx,
			Y:     cy,
			VX:    pc.VX.Lerp(s.rng.Float64()),
			VY:    pc.VY.Lerp(s.rng.Float64()),
			Size:  pc.Size.Lerp(s.rng.Float64()),
			Life:  1,
			Decay: pc.Decay.Lerp(s.rng.Float64()),
		})
	}
}

// UpdateParticles advances every particle one frame and drops dead ones.
func UpdateParticles(s *Session) {
	g := s.cfg.Particles.Gravity
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += g
		p.Life -= p.Decay
		if p.Life <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	s.particles = kept
}
