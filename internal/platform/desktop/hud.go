package desktop

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/flapper/internal/canvas"
)

var (
	panelFill   = canvas.Solid(canvas.RGBA(0, 0, 0, 0.55))
	panelStroke = canvas.Solid(canvas.MustHex("#ffffff"))
	titleColor  = color.NRGBA{R: 0xff, G: 0xd7, A: 0xff}
)

// HUD is the desktop presentation layer: score counter plus start and game
// over panels. Panels are canvas shapes; text is drawn with text/v2 in device
// space so it stays sharp at any window size.
type HUD struct {
	face       *text.GoTextFaceSource
	start      bool
	gameOver   bool
	score      int
	finalScore int
	best       int
	muted      bool
}

// NewHUD loads the bundled pixel font.
func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("desktop: load font: %w", err)
	}
	return &HUD{face: src}, nil
}

func (h *HUD) ShowStart()          { h.start = true }
func (h *HUD) HideStart()          { h.start = false }
func (h *HUD) ShowGameOver()       { h.gameOver = true }
func (h *HUD) HideGameOver()       { h.gameOver = false }
func (h *HUD) SetScore(n int)      { h.score = n }
func (h *HUD) SetFinalScore(n int) { h.finalScore = n }
func (h *HUD) SetBest(n int)       { h.best = n }
func (h *HUD) SetMuted(m bool)     { h.muted = m }

// Best returns the best score shown on the panels.
func (h *HUD) Best() int { return h.best }

// Draw paints the HUD over the scene. Coordinates are logical canvas units.
func (h *HUD) Draw(screen *ebiten.Image, c *canvas.Canvas) {
	w, _ := c.Size()
	cx := w / 2

	if !h.start {
		h.text(screen, c, fmt.Sprintf("%d", h.score), cx, 60, 36, color.White)
	}

	switch {
	case h.start:
		h.panel(c, 200, 200)
		h.text(screen, c, "FLAPPER", cx, 240, 28, titleColor)
		h.text(screen, c, "SPACE or click", cx, 300, 12, color.White)
		h.text(screen, c, "to flap", cx, 322, 12, color.White)
		h.text(screen, c, fmt.Sprintf("Best: %d", h.best), cx, 370, 14, color.White)
	case h.gameOver:
		h.panel(c, 200, 220)
		h.text(screen, c, "GAME OVER", cx, 240, 24, titleColor)
		h.text(screen, c, fmt.Sprintf("Score: %d", h.finalScore), cx, 300, 16, color.White)
		h.text(screen, c, fmt.Sprintf("Best: %d", h.best), cx, 330, 16, color.White)
		h.text(screen, c, "SPACE to play again", cx, 385, 10, color.White)
	}

	if h.muted {
		h.text(screen, c, "muted", w-40, 585, 8, color.White)
	}
}

// panel draws a centered translucent box at logical y.
func (h *HUD) panel(c *canvas.Canvas, y, height float64) {
	w, _ := c.Size()
	pw := w - 60
	x := (w - pw) / 2
	c.FillRect(x, y, pw, height, panelFill)
	c.StrokeRect(x, y, pw, height, 2, panelStroke)
}

// text draws centered text at a logical position and size.
func (h *HUD) text(screen *ebiten.Image, c *canvas.Canvas, s string, x, y, size float64, col color.Color) {
	m := c.Transform()
	dx, dy := m.Apply(x, y)
	scale := m.LineScale()
	if scale <= 0 {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(dx, dy)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, &text.GoTextFace{
		Source: h.face,
		Size:   size * scale,
	}, op)
}
