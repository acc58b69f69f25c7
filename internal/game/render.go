package game

import (
	"github.com/vovakirdan/flapper/internal/canvas"
	"github.com/vovakirdan/flapper/internal/config"
)

var (
	skyTop    = canvas.MustHex("#4ec0ca")
	skyBottom = canvas.MustHex("#87ceeb")
	sandTop   = canvas.MustHex("#deb887")
	sandBase  = canvas.MustHex("#d2b48c")

	pipeFill   = canvas.Solid(canvas.MustHex("#4CAF50"))
	pipeStroke = canvas.Solid(canvas.MustHex("#2E7D32"))

	birdBody    = canvas.Solid(canvas.MustHex("#FFD700"))
	birdOutline = canvas.Solid(canvas.MustHex("#FFA500"))
	birdEye     = canvas.Solid(canvas.MustHex("#FFFFFF"))
	birdPupil   = canvas.Solid(canvas.MustHex("#000000"))
	birdBeak    = canvas.Solid(canvas.MustHex("#FF6347"))
)

const (
	pipeLineWidth = 3
	birdLineWidth = 2
	eyeRadius     = 6
	pupilRadius   = 3
	pupilOffset   = 2
	beakLength    = 10
	beakHalfWidth = 3
)

// DrawBackground fills the canvas with the sky-over-sand gradient.
func DrawBackground(dst canvas.Surface, cfg config.Config) {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	g := canvas.NewLinearGradient(0, 0, 0, h).
		AddColorStop(0, skyTop).
		AddColorStop(0.5, skyBottom).
		AddColorStop(0.5, sandTop).
		AddColorStop(1, sandBase)
	dst.FillRect(0, 0, w, h, canvas.Paint{Gradient: g})
}

// DrawEntities draws pipes, then particles, then the bird.
func DrawEntities(dst canvas.Surface, s *Session) {
	DrawPipes(dst, s)
	DrawParticles(dst, s)
	DrawBird(dst, s)
}

// DrawPipes draws both segments of every pipe, each with a wider cap at the
// gate.
func DrawPipes(dst canvas.Surface, s *Session) {
	pc := s.cfg.Pipes
	h := s.cfg.Canvas.Height
	capX := func(p Pipe) float64 { return p.X - pc.CapOverhang }
	capW := pc.Width + 2*pc.CapOverhang

	rect := func(x, y, w, h float64) {
		dst.FillRect(x, y, w, h, pipeFill)
		dst.StrokeRect(x, y, w, h, pipeLineWidth, pipeStroke)
	}

	for _, p := range s.pipes {
		top, bottom := p.Segments(pc, h)
		rect(top.X, top.Y, top.W, top.H)
		rect(capX(p), top.Bottom()-pc.CapHeight, capW, pc.CapHeight)

		rect(bottom.X, bottom.Y, bottom.W, bottom.H)
		rect(capX(p), bottom.Y, capW, pc.CapHeight)
	}
}

// DrawParticles draws each particle as a translucent disc with a smaller,
// fainter highlight toward the upper left.
func DrawParticles(dst canvas.Surface, s *Session) {
	for _, p := range s.particles {
		dst.FillCircle(p.X, p.Y, p.Size, canvas.Solid(canvas.RGBA(255, 255, 255, p.Life)))
		off := p.Size * 0.3
		dst.FillCircle(p.X-off, p.Y-off, p.Size*0.5, canvas.Solid(canvas.RGBA(240, 240, 255, p.Life*0.5)))
	}
}

// DrawBird draws the bird rotated about its center.
func DrawBird(dst canvas.Surface, s *Session) {
	b := s.bird
	cx, cy := b.Center()

	dst.Save()
	defer dst.Restore()
	dst.Translate(cx, cy)
	dst.Rotate(b.Rotation)

	dst.FillEllipse(0, 0, b.Width/2, b.Height/2, birdBody)
	dst.StrokeEllipse(0, 0, b.Width/2, b.Height/2, birdLineWidth, birdOutline)

	eyeX, eyeY := b.Width/4, -b.Height/6
	dst.FillCircle(eyeX, eyeY, eyeRadius, birdEye)
	dst.FillCircle(eyeX+pupilOffset, eyeY, pupilRadius, birdPupil)

	nose := b.Width / 2
	beak := [3]canvas.Point{
		{X: nose, Y: 0},
		{X: nose + beakLength, Y: -beakHalfWidth},
		{X: nose + beakLength, Y: beakHalfWidth},
	}
	dst.FillPath(beak[:], birdBeak)
}
