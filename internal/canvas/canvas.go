// Package canvas provides a small immediate-mode drawing surface modeled on
// the HTML canvas 2D context: filled and stroked rectangles, ellipses, circles
// and paths, linear gradients, and a save/translate/rotate/restore transform
// stack. Shapes are flattened into polygons and handed to a Backend, so the
// same scene can be rasterized in software (terminal, PNG) or on the GPU.
package canvas

import (
	"image/color"
	"math"
)

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Surface is the drawing API consumed by scene renderers.
// Coordinates are logical canvas units; the surface maps them onto its device.
type Surface interface {
	// Size returns the logical size of the surface.
	Size() (w, h float64)
	// Clear erases the whole device to transparent.
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	FillRect(x, y, w, h float64, p Paint)
	StrokeRect(x, y, w, h, lineWidth float64, p Paint)
	FillEllipse(cx, cy, rx, ry float64, p Paint)
	StrokeEllipse(cx, cy, rx, ry, lineWidth float64, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	FillArc(cx, cy, r, start, end float64, p Paint)
	FillPath(pts []Point, p Paint)
}

// Backend receives device-space polygons.
//
// Polygons produced by Canvas are simple; every shape except FillPath is
// convex. Gradient paints arrive already transformed into device space.
type Backend interface {
	Size() (w, h int)
	Clear()
	FillPolygon(pts []Point, p Paint)
	StrokePolygon(pts []Point, closed bool, width float64, c color.NRGBA)
}

// ellipseSegments is the number of edges used to flatten a full ellipse.
const ellipseSegments = 48

// Canvas implements Surface on top of a Backend.
type Canvas struct {
	backend Backend
	w, h    float64
	base    Matrix
	m       Matrix
	stack   []Matrix
	buf     []Point
}

// New creates a canvas with the given logical size. The logical area is scaled
// uniformly to fit the backend and centered.
func New(b Backend, w, h float64) *Canvas {
	c := &Canvas{backend: b, w: w, h: h}
	c.Fit()
	return c
}

// Fit recomputes the logical-to-device mapping. Call after the backend resizes.
func (c *Canvas) Fit() {
	bw, bh := c.backend.Size()
	s := math.Min(float64(bw)/c.w, float64(bh)/c.h)
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		s = 0
	}
	ox := (float64(bw) - c.w*s) / 2
	oy := (float64(bh) - c.h*s) / 2
	c.base = Identity().Translate(ox, oy).Scale(s, s)
	c.m = c.base
	c.stack = c.stack[:0]
}

// Backend returns the underlying backend.
func (c *Canvas) Backend() Backend {
	return c.backend
}

// Size returns the logical size.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Transform returns the current logical-to-device matrix.
func (c *Canvas) Transform() Matrix {
	return c.m
}

// Clear erases the device.
func (c *Canvas) Clear() {
	c.backend.Clear()
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.m)
}

// Restore pops the transform pushed by the matching Save.
// An unbalanced Restore is ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.m = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	c.m = c.m.Translate(x, y)
}

func (c *Canvas) Rotate(rad float64) {
	c.m = c.m.Rotate(rad)
}

func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	if g := p.Gradient; g != nil && g.X0 == g.X1 && len(g.Stops) > 1 {
		c.fillVerticalBands(x, y, w, h, g)
		return
	}
	c.fill(rectPoints(c.buf[:0], x, y, w, h), p)
}

// fillVerticalBands splits a rect along a vertical gradient so each band spans
// exactly two stops. Backends that interpolate per vertex render hard stops
// correctly this way.
func (c *Canvas) fillVerticalBands(x, y, w, h float64, g *LinearGradient) {
	span := g.Y1 - g.Y0
	at := func(off float64) float64 { return g.Y0 + off*span }
	top, bottom := y, y+h

	band := func(y0, y1 float64, p Paint) {
		if span < 0 {
			y0, y1 = y1, y0
		}
		y0 = math.Max(y0, top)
		y1 = math.Min(y1, bottom)
		if y1 <= y0 {
			return
		}
		c.fill(rectPoints(c.buf[:0], x, y0, w, y1-y0), p)
	}

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	band(math.Inf(-1)*sign(span), at(first.Offset), Solid(first.Color))
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if b.Offset == a.Offset {
			continue
		}
		sub := &LinearGradient{
			X0: g.X0, Y0: at(a.Offset), X1: g.X1, Y1: at(b.Offset),
			Stops: []Stop{{0, a.Color}, {1, b.Color}},
		}
		band(at(a.Offset), at(b.Offset), Paint{Gradient: sub})
	}
	band(at(last.Offset), math.Inf(1)*sign(span), Solid(last.Color))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, p Paint) {
	c.stroke(rectPoints(c.buf[:0], x, y, w, h), true, lineWidth, p)
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c.fill(arcPoints(c.buf[:0], cx, cy, rx, ry, 0, 2*math.Pi, false), p)
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, lineWidth float64, p Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c.stroke(arcPoints(c.buf[:0], cx, cy, rx, ry, 0, 2*math.Pi, false), true, lineWidth, p)
}

func (c *Canvas) FillCircle(cx, cy, r float64, p Paint) {
	c.FillEllipse(cx, cy, r, r, p)
}

// FillArc fills the sector of a circle between two angles (radians, clockwise).
func (c *Canvas) FillArc(cx, cy, r, start, end float64, p Paint) {
	if r <= 0 || end <= start {
		return
	}
	if end-start >= 2*math.Pi {
		c.FillCircle(cx, cy, r, p)
		return
	}
	c.fill(arcPoints(c.buf[:0], cx, cy, r, r, start, end, true), p)
}

// FillPath fills a closed polygon.
func (c *Canvas) FillPath(pts []Point, p Paint) {
	if len(pts) < 3 {
		return
	}
	c.fill(append(c.buf[:0], pts...), p)
}

func (c *Canvas) fill(pts []Point, p Paint) {
	c.buf = pts
	c.project(pts)
	if p.Gradient != nil {
		p.Gradient = p.Gradient.Transform(c.m)
	}
	c.backend.FillPolygon(pts, p)
}

func (c *Canvas) stroke(pts []Point, closed bool, lineWidth float64, p Paint) {
	c.buf = pts
	if lineWidth <= 0 {
		return
	}
	col := p.Color
	if p.Gradient != nil && len(pts) > 0 {
		col = p.Gradient.At(pts[0].X, pts[0].Y)
	}
	c.project(pts)
	c.backend.StrokePolygon(pts, closed, lineWidth*c.m.LineScale(), col)
}

func (c *Canvas) project(pts []Point) {
	for i := range pts {
		pts[i].X, pts[i].Y = c.m.Apply(pts[i].X, pts[i].Y)
	}
}

func rectPoints(dst []Point, x, y, w, h float64) []Point {
	return append(dst,
		Point{x, y},
		Point{x + w, y},
		Point{x + w, y + h},
		Point{x, y + h},
	)
}

func arcPoints(dst []Point, cx, cy, rx, ry, start, end float64, sector bool) []Point {
	if sector {
		dst = append(dst, Point{cx, cy})
	}
	n := int(math.Ceil(ellipseSegments * (end - start) / (2 * math.Pi)))
	if n < 2 {
		n = 2
	}
	closed := !sector
	steps := n
	if !closed {
		steps = n + 1
	}
	for i := 0; i < steps; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		s, co := math.Sincos(a)
		dst = append(dst, Point{cx + rx*co, cy + ry*s})
	}
	return dst
}
