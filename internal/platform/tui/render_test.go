package tui

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flapper/internal/canvas"
	"github.com/vovakirdan/flapper/internal/core"
)

func TestRasterToScreenHalfBlock(t *testing.T) {
	r := canvas.NewRaster(2, 4)
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	img := r.Image()
	img.SetNRGBA(0, 0, red) // cell (0,0): red over blue
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 0, red) // cell (1,0): red over red
	img.SetNRGBA(1, 1, red)
	img.SetNRGBA(0, 3, blue) // cell (0,1): transparent over blue

	s := core.NewScreen(2, 2)
	RasterToScreen(r, s, true)

	tests := []struct {
		x, y int
		want core.Cell
	}{
		{0, 0, core.Cell{Rune: upperHalf, FG: core.RGB(255, 0, 0), BG: core.RGB(0, 0, 255)}},
		{1, 0, core.Cell{Rune: ' ', BG: core.RGB(255, 0, 0)}},
		{0, 1, core.Cell{Rune: upperHalf, FG: core.ColorDefault, BG: core.RGB(0, 0, 255)}},
		{1, 1, core.Cell{Rune: ' '}},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, tc.y); got != tc.want {
			t.Errorf("cell (%d,%d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRasterToScreenFullBlock(t *testing.T) {
	r := canvas.NewRaster(2, 2)
	r.Image().SetNRGBA(1, 1, color.NRGBA{G: 128, A: 255})

	s := core.NewScreen(2, 2)
	RasterToScreen(r, s, false)

	if got := s.GetCell(1, 1); got != (core.Cell{Rune: ' ', BG: core.RGB(0, 128, 0)}) {
		t.Errorf("cell (1,1) = %+v", got)
	}
	if got := s.GetCell(0, 0); got != (core.Cell{Rune: ' '}) {
		t.Errorf("transparent pixel should map to a default cell, got %+v", got)
	}
}

func TestRasterSize(t *testing.T) {
	if w, h := rasterSize(80, 23, true); w != 80 || h != 46 {
		t.Errorf("rasterSize half block = %dx%d, expected 80x46", w, h)
	}
	if w, h := rasterSize(80, 23, false); w != 80 || h != 23 {
		t.Errorf("rasterSize = %dx%d, expected 80x23", w, h)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	// A renderer writing to a non-terminal has no color profile, so the output
	// is the plain text of the screen.
	styles := newStyleCache(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorWhite, core.ColorPanel)
	s.DrawText(2, 0, "cd", core.ColorGold, core.ColorPanel)
	s.DrawText(0, 1, "xyz", core.ColorDefault, core.ColorDefault)

	if got, want := renderScreen(s, styles), s.String(); got != want {
		t.Errorf("renderScreen() = %q, expected %q", got, want)
	}
	// white/panel, gold/panel, default/default
	if len(styles.styles) != 3 {
		t.Errorf("style cache holds %d entries, expected 3", len(styles.styles))
	}
}
