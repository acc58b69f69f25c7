package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flapper/internal/canvas"
	"github.com/vovakirdan/flapper/internal/core"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

type stylePair struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles. A Renderer is used from a
// single Bubble Tea program, so the cache needs no locking.
type styleCache struct {
	r      *lipgloss.Renderer
	styles map[stylePair]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &styleCache{r: r, styles: make(map[stylePair]lipgloss.Style)}
}

func (c *styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := stylePair{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := c.r.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	c.styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, newStyleCache(nil))
}

func renderScreen(s *core.Screen, styles *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}

// toColor converts a pixel to a cell color. Fully transparent pixels map to
// the terminal default.
func toColor(c color.NRGBA) core.Color {
	if c.A == 0 {
		return core.ColorDefault
	}
	return core.RGB(c.R, c.G, c.B)
}

// RasterToScreen copies a raster into cells. With halfBlock every cell shows
// two vertically stacked pixels; otherwise one pixel per cell.
func RasterToScreen(r *canvas.Raster, dst *core.Screen, halfBlock bool) {
	w, h := r.Size()
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width() && x < w; x++ {
			if !halfBlock {
				if y >= h {
					continue
				}
				dst.SetCell(x, y, core.Cell{Rune: ' ', BG: toColor(r.At(x, y))})
				continue
			}
			top := toColor(r.At(x, 2*y))
			bottom := toColor(r.At(x, 2*y+1))
			if top == bottom {
				dst.SetCell(x, y, core.Cell{Rune: ' ', BG: bottom})
				continue
			}
			dst.SetCell(x, y, core.Cell{Rune: upperHalf, FG: top, BG: bottom})
		}
	}
}

// rasterSize returns the pixel size backing a w x h cell area.
func rasterSize(w, h int, halfBlock bool) (int, int) {
	if halfBlock {
		return w, 2 * h
	}
	return w, h
}
