package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/flapper/internal/core"
)

// Overlay is the terminal presentation layer. The session drives it through
// the game.Presenter calls; Draw paints it over the rendered playfield.
type Overlay struct {
	start      bool
	gameOver   bool
	score      int
	finalScore int
	best       int
	status     string
	statusLeft int // Frames until the status line clears
}

// statusFrames is how long a status message stays up, two seconds at 60 fps.
const statusFrames = 120

// NewOverlay creates an overlay with every panel hidden.
func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) ShowStart()          { o.start = true }
func (o *Overlay) HideStart()          { o.start = false }
func (o *Overlay) ShowGameOver()       { o.gameOver = true }
func (o *Overlay) HideGameOver()       { o.gameOver = false }
func (o *Overlay) SetScore(n int)      { o.score = n }
func (o *Overlay) SetFinalScore(n int) { o.finalScore = n }
func (o *Overlay) SetBest(n int)       { o.best = n }

// SetStatus shows msg on the bottom row for statusFrames frames.
func (o *Overlay) SetStatus(msg string) {
	o.status = msg
	o.statusLeft = statusFrames
}

// Tick advances the status timer by one frame.
func (o *Overlay) Tick() {
	if o.statusLeft == 0 {
		return
	}
	o.statusLeft--
	if o.statusLeft == 0 {
		o.status = ""
	}
}

// Best returns the best score shown on the panels.
func (o *Overlay) Best() int { return o.best }

// Draw paints the score HUD and whichever panel is visible.
func (o *Overlay) Draw(dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	if !o.start {
		hud := fmt.Sprintf(" %d ", o.score)
		dst.DrawTextCentered(1, hud, core.ColorWhite, core.ColorPanel)
	}

	switch {
	case o.start:
		o.drawCenteredBox(dst, core.ColorGold,
			"F L A P P E R",
			"",
			"Press SPACE to flap",
			fmt.Sprintf("Best: %d", o.best),
		)
	case o.gameOver:
		o.drawCenteredBox(dst, core.ColorRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", o.finalScore),
			fmt.Sprintf("Best: %d", o.best),
			"",
			"SPACE to play again",
		)
	}

	if o.status != "" {
		dst.DrawText(1, dst.Height()-1, o.status, core.ColorGray, core.ColorPanel)
	}
}

// drawCenteredBox draws a message box in the center of the screen. The first
// line is the title and uses the accent color.
func (o *Overlay) drawCenteredBox(dst *core.Screen, accent core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, core.Cell{Rune: ' ', BG: core.ColorPanel})
	dst.DrawBox(box, core.ColorGray, core.ColorPanel)

	for i, l := range lines {
		fg := core.ColorWhite
		if i == 0 {
			fg = accent
		}
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+1+i, l, fg, core.ColorPanel)
	}
}
