package game

// UpdatePipes runs one frame of the obstacle stream: spawn on cadence,
// advance, score, prune.
//
// A pipe spawns whenever the frame counter is a multiple of the spawn
// interval. Scoring uses the post-move position: a pipe scores once its
// trailing edge is strictly left of the bird's x.
func UpdatePipes(s *Session) {
	pc := s.cfg.Pipes
	if pc.SpawnInterval > 0 && s.frames%pc.SpawnInterval == 0 {
		spawnPipe(s)
	}

	kept := s.pipes[:0]
	for _, p := range s.pipes {
		p.X -= pc.Speed

		if !p.Scored && p.X+pc.Width < s.bird.X {
			p.Scored = true
			s.score++
			s.view.SetScore(s.score)
			s.audio.Play(CueScore)
		}

		if p.X+pc.Width < 0 {
			continue
		}
		kept = append(kept, p)
	}
	s.pipes = kept
}

// spawnPipe appends a pipe at the right edge with a random top height drawn
// uniformly from [MinHeight, MaxTopHeight). An empty range pins the height
// to MinHeight.
func spawnPipe(s *Session) {
	pc := s.cfg.Pipes
	lo := pc.MinHeight
	hi := pc.MaxTopHeight(s.cfg.Canvas.Height)

	top := lo
	if hi > lo {
		top = lo + s.rng.Float64()*(hi-lo)
	}

	s.pipes = append(s.pipes, Pipe{
		X:         s.cfg.Canvas.Width,
		TopHeight: top,
	})
}
