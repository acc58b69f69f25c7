package canvas

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Paint is either a solid color or a linear gradient.
type Paint struct {
	Color    color.NRGBA
	Gradient *LinearGradient
}

// Solid returns a paint filling with a single color.
func Solid(c color.NRGBA) Paint {
	return Paint{Color: c}
}

// At returns the paint color at a point in the gradient's coordinate space.
func (p Paint) At(x, y float64) color.NRGBA {
	if p.Gradient == nil {
		return p.Color
	}
	return p.Gradient.At(x, y)
}

// Hex parses "#rrggbb" or "#rrggbbaa".
func Hex(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("canvas: bad color length %q", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("canvas: parse color %q: %w", s, err)
	}
	return c, nil
}

// MustHex is Hex for compile-time constants. It panics on malformed input.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA builds a color with a fractional alpha in [0, 1].
func RGBA(r, g, b uint8, alpha float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: unit(alpha)}
}

func unit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 0xff))
}

// Stop is a gradient color stop.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient interpolates colors along the line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// NewLinearGradient creates a gradient without stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset.
// Stops with equal offsets keep insertion order, which produces a hard edge:
// the later stop wins at exactly that offset.
func (g *LinearGradient) AddColorStop(offset float64, c color.NRGBA) *LinearGradient {
	offset = math.Max(0, math.Min(1, offset))
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, Stop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = Stop{Offset: offset, Color: c}
	return g
}

// Param projects a point onto the gradient line, returning t in [0, 1].
func (g *LinearGradient) Param(x, y float64) float64 {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	return math.Max(0, math.Min(1, t))
}

// At returns the color at a point.
func (g *LinearGradient) At(x, y float64) color.NRGBA {
	return g.ColorAt(g.Param(x, y))
}

// ColorAt returns the color at parameter t.
func (g *LinearGradient) ColorAt(t float64) color.NRGBA {
	n := len(g.Stops)
	if n == 0 {
		return color.NRGBA{}
	}
	i := sort.Search(n, func(i int) bool { return g.Stops[i].Offset > t })
	if i == 0 {
		return g.Stops[0].Color
	}
	if i == n {
		return g.Stops[n-1].Color
	}
	a, b := g.Stops[i-1], g.Stops[i]
	return lerpColor(a.Color, b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}

// Transform maps the gradient endpoints through m.
func (g *LinearGradient) Transform(m Matrix) *LinearGradient {
	x0, y0 := m.Apply(g.X0, g.Y0)
	x1, y1 := m.Apply(g.X1, g.Y1)
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: g.Stops}
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}
