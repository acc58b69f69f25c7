package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"slices"

	"golang.org/x/image/vector"
)

// Raster is a software Backend drawing into an NRGBA image. Shapes are
// scan-converted by x/image/vector into a coverage mask; a pixel is painted
// whole when at least half of it is covered, which keeps the output crisp
// when each pixel becomes half a terminal cell.
type Raster struct {
	img   *image.NRGBA
	z     vector.Rasterizer
	mask  image.Alpha
	paths [][]Point
	pool  []Point
}

// NewRaster creates a transparent raster of the given pixel size.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Resize reallocates the raster. Content is discarded.
func (r *Raster) Resize(w, h int) {
	if cw, ch := r.Size(); cw == w && ch == h {
		return
	}
	r.img = image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// Image returns the backing image.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// At returns the pixel at (x, y), or transparent when out of bounds.
func (r *Raster) At(x, y int) color.NRGBA {
	return r.img.NRGBAAt(x, y)
}

// coverAbove is the mask value a pixel needs to be painted. Half-covered
// pixels count as inside.
const coverAbove = 0x7f

// FillPolygon fills using the non-zero winding rule.
func (r *Raster) FillPolygon(pts []Point, p Paint) {
	if len(pts) < 3 {
		return
	}
	r.paths = append(r.paths[:0], pts)
	r.cover(r.paths, func(px, py int) {
		r.blend(px, py, p.At(float64(px)+0.5, float64(py)+0.5))
	})
}

// StrokePolygon paints the outline width wide, with round joins and caps.
// Strokes are never thinner than one pixel.
func (r *Raster) StrokePolygon(pts []Point, closed bool, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	hw := math.Max(width/2, 0.5)
	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}

	r.paths = r.paths[:0]
	r.pool = r.pool[:0]
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if q, ok := segmentQuad(a, b, hw); ok {
			r.paths = append(r.paths, r.oriented(q[:]))
		}
	}
	for _, pt := range pts {
		r.paths = append(r.paths, r.oriented(disc(pt, hw)))
	}
	r.cover(r.paths, func(px, py int) {
		r.blend(px, py, c)
	})
}

// cover rasterizes paths into a coverage mask over their bounding box and
// calls paint for every pixel inside both the shape and the image.
func (r *Raster) cover(paths [][]Point, paint func(px, py int)) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, path := range paths {
		for _, pt := range path {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	clip := box.Intersect(r.img.Bounds())
	if clip.Empty() {
		return
	}

	bw, bh := box.Dx(), box.Dy()
	r.z.Reset(bw, bh)
	r.z.DrawOp = draw.Src
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		r.z.MoveTo(float32(path[0].X-ox), float32(path[0].Y-oy))
		for _, pt := range path[1:] {
			r.z.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
		}
		r.z.ClosePath()
	}

	if n := bw * bh; cap(r.mask.Pix) < n {
		r.mask.Pix = make([]uint8, n)
	} else {
		r.mask.Pix = r.mask.Pix[:n]
	}
	r.mask.Stride = bw
	r.mask.Rect = image.Rect(0, 0, bw, bh)
	r.z.Draw(&r.mask, r.mask.Rect, image.Opaque, image.Point{})

	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		row := r.mask.Pix[(py-box.Min.Y)*bw:]
		for px := clip.Min.X; px < clip.Max.X; px++ {
			if row[px-box.Min.X] >= coverAbove {
				paint(px, py)
			}
		}
	}
}

// oriented copies path into the scratch pool with positive winding, so
// overlapping stroke pieces accumulate instead of cancelling.
func (r *Raster) oriented(path []Point) []Point {
	start := len(r.pool)
	r.pool = append(r.pool, path...)
	out := r.pool[start:len(r.pool):len(r.pool)]
	if signedArea(out) < 0 {
		slices.Reverse(out)
	}
	return out
}

func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// segmentQuad returns the rectangle of half-width hw around segment a-b.
func segmentQuad(a, b Point, hw float64) ([4]Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return [4]Point{}, false
	}
	nx, ny := -dy/l*hw, dx/l*hw
	return [4]Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}, true
}

const discSegments = 12

// disc approximates a circle of radius rad around c.
func disc(c Point, rad float64) []Point {
	pts := make([]Point, discSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / discSegments
		pts[i] = Point{c.X + rad*math.Cos(a), c.Y + rad*math.Sin(a)}
	}
	return pts
}

// blend composites c over the pixel (straight alpha, source-over).
func (r *Raster) blend(x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	i := r.img.PixOffset(x, y)
	px := r.img.Pix[i : i+4 : i+4]
	if c.A == 0xff || px[3] == 0 {
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		return
	}
	sa := float64(c.A) / 0xff
	da := float64(px[3]) / 0xff
	oa := sa + da*(1-sa)
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round((float64(s)*sa + float64(d)*da*(1-sa)) / oa))
	}
	px[0] = mix(c.R, px[0])
	px[1] = mix(c.G, px[1])
	px[2] = mix(c.B, px[2])
	px[3] = uint8(math.Round(oa * 0xff))
}

// WritePNG encodes the raster as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}
