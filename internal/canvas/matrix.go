package canvas

import "math"

// Matrix is a 2D affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Multiply returns m applied after n (m ∘ n).
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate returns m with a translation applied in local space.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Multiply(Matrix{A: 1, D: 1, E: x, F: y})
}

// Rotate returns m with a clockwise rotation (y axis down) in local space.
func (m Matrix) Rotate(rad float64) Matrix {
	s, c := math.Sincos(rad)
	return m.Multiply(Matrix{A: c, B: s, C: -s, D: c})
}

// Scale returns m with a scale applied in local space.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Multiply(Matrix{A: sx, D: sy})
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// LineScale is the factor by which the transform scales lengths.
func (m Matrix) LineScale() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// AxisAligned reports whether the transform keeps rectangles axis-aligned.
func (m Matrix) AxisAligned() bool {
	return m.B == 0 && m.C == 0
}
