package desktop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flapper/internal/canvas"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// triangleBackend draws canvas polygons onto an Ebitengine image as
// triangles sampled from a white pixel. Every shape of the scene is convex, so
// polygons are fanned from their first vertex.
type triangleBackend struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

func (b *triangleBackend) Size() (int, int) {
	if b.dst == nil {
		return 0, 0
	}
	s := b.dst.Bounds().Size()
	return s.X, s.Y
}

func (b *triangleBackend) Clear() {
	if b.dst != nil {
		b.dst.Clear()
	}
}

func (b *triangleBackend) FillPolygon(pts []canvas.Point, p canvas.Paint) {
	if b.dst == nil || len(pts) < 3 {
		return
	}
	b.vs = b.vs[:0]
	for _, pt := range pts {
		b.vs = append(b.vs, vertex(pt, p.At(pt.X, pt.Y)))
	}
	b.is = fanIndices(b.is[:0], 0, len(pts))
	b.dst.DrawTriangles(b.vs, b.is, whiteSubImage, nil)
}

func (b *triangleBackend) StrokePolygon(pts []canvas.Point, closed bool, width float64, c color.NRGBA) {
	if b.dst == nil || len(pts) < 2 {
		return
	}
	hw := math.Max(width/2, 0.5)
	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}

	b.vs = b.vs[:0]
	b.is = b.is[:0]
	for i := 0; i < segs; i++ {
		q, ok := segmentQuad(pts[i], pts[(i+1)%len(pts)], hw)
		if !ok {
			continue
		}
		base := len(b.vs)
		for _, pt := range q {
			b.vs = append(b.vs, vertex(pt, c))
		}
		b.is = fanIndices(b.is, base, 4)
	}
	if len(b.is) > 0 {
		b.dst.DrawTriangles(b.vs, b.is, whiteSubImage, nil)
	}
}

// vertex builds a straight-alpha colored vertex.
func vertex(pt canvas.Point, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(pt.X),
		DstY:   float32(pt.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

// fanIndices appends the triangle fan over n vertices starting at base.
func fanIndices(dst []uint16, base, n int) []uint16 {
	for i := 1; i+1 < n; i++ {
		dst = append(dst, uint16(base), uint16(base+i), uint16(base+i+1))
	}
	return dst
}

// segmentQuad returns the rectangle covering segment ab widened by hw on each
// side and extended by hw at both ends, so consecutive segments overlap at
// the joins. Degenerate segments report false.
func segmentQuad(a, b canvas.Point, hw float64) ([4]canvas.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return [4]canvas.Point{}, false
	}
	ux, uy := dx/l*hw, dy/l*hw // along
	nx, ny := -uy, ux          // normal
	return [4]canvas.Point{
		{X: a.X - ux + nx, Y: a.Y - uy + ny},
		{X: b.X + ux + nx, Y: b.Y + uy + ny},
		{X: b.X + ux - nx, Y: b.Y + uy - ny},
		{X: a.X - ux - nx, Y: a.Y - uy - ny},
	}, true
}
