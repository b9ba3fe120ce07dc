package geom

import "math"

// singularEpsilon bounds how small a determinant can get before the
// matrix is treated as non-invertible.
const singularEpsilon = 1e-9

// Transform is a 2D affine transform backed by a 3x3 homogeneous
// matrix. The zero value is NOT usable; start from Identity or
// FromMatrix. Angles are in degrees and rotate clockwise, since the Y
// axis points down.
type Transform struct {
	// row-major: m[0..2] is the first row (a00 a01 a02).
	m [9]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// FromMatrix builds a transform from explicit 3x3 coefficients.
func FromMatrix(a00, a01, a02, a10, a11, a12, a20, a21, a22 float64) Transform {
	return Transform{m: [9]float64{
		a00, a01, a02,
		a10, a11, a12,
		a20, a21, a22,
	}}
}

// Matrix returns the transform as a 4x4 column-major float32 array,
// directly usable as a GL-style model matrix. The z and w rows are
// identity-padded.
func (t Transform) Matrix() [16]float32 {
	m := t.m
	return [16]float32{
		float32(m[0]), float32(m[3]), 0, float32(m[6]),
		float32(m[1]), float32(m[4]), 0, float32(m[7]),
		0, 0, 1, 0,
		float32(m[2]), float32(m[5]), 0, float32(m[8]),
	}
}

// Apply maps the point (x, y) through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.m[0]*x + t.m[1]*y + t.m[2],
		t.m[3]*x + t.m[4]*y + t.m[5]
}

// ApplyVec maps the point v through the transform.
func (t Transform) ApplyVec(v Vec2) Vec2 {
	x, y := t.Apply(v.X, v.Y)
	return Vec2{X: x, Y: y}
}

// TransformRect maps all four corners of r and returns their
// axis-aligned bounding box. Rotations are not preserved, only the
// enclosing box is.
func (t Transform) TransformRect(r Rect) Rect {
	x0, y0 := t.Apply(r.X, r.Y)
	x1, y1 := t.Apply(r.X+r.W, r.Y)
	x2, y2 := t.Apply(r.X, r.Y+r.H)
	x3, y3 := t.Apply(r.X+r.W, r.Y+r.H)

	left := min(min(x0, x1), min(x2, x3))
	top := min(min(y0, y1), min(y2, y3))
	right := max(max(x0, x1), max(x2, x3))
	bottom := max(max(y0, y1), max(y2, y3))

	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Det returns the determinant of the 3x3 matrix.
func (t Transform) Det() float64 {
	m := t.m
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[1]*(m[3]*m[8]-m[6]*m[5]) +
		m[2]*(m[3]*m[7]-m[6]*m[4])
}

// Inverse returns the inverse transform. A (near-)singular matrix
// yields the identity transform instead of an error; callers that need
// to tell the two cases apart should use InverseChecked.
func (t Transform) Inverse() Transform {
	inv, ok := t.InverseChecked()
	if !ok {
		return Identity()
	}
	return inv
}

// InverseChecked returns the inverse transform and true, or the
// identity and false when the matrix is not invertible.
func (t Transform) InverseChecked() (Transform, bool) {
	det := t.Det()
	if math.Abs(det) < singularEpsilon {
		return Identity(), false
	}
	m := t.m
	return Transform{m: [9]float64{
		(m[4]*m[8] - m[7]*m[5]) / det,
		-(m[1]*m[8] - m[7]*m[2]) / det,
		(m[1]*m[5] - m[4]*m[2]) / det,
		-(m[3]*m[8] - m[6]*m[5]) / det,
		(m[0]*m[8] - m[6]*m[2]) / det,
		-(m[0]*m[5] - m[3]*m[2]) / det,
		(m[3]*m[7] - m[6]*m[4]) / det,
		-(m[0]*m[7] - m[6]*m[1]) / det,
		(m[0]*m[4] - m[3]*m[1]) / det,
	}}, true
}

// Combine multiplies the transform by other (t = t * other) and
// returns t for chaining. When the result is applied to a point, other
// acts in the point's local frame before the original t.
func (t *Transform) Combine(other Transform) *Transform {
	a := t.m
	b := other.m
	t.m = [9]float64{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],
		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],
		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
	return t
}

// Translate combines a translation by (x, y) into the transform.
func (t *Transform) Translate(x, y float64) *Transform {
	return t.Combine(FromMatrix(
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	))
}

// Rotate combines a clockwise rotation of angle degrees into the
// transform.
func (t *Transform) Rotate(angle float64) *Transform {
	rad := angle * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return t.Combine(FromMatrix(
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	))
}

// RotateAround combines a rotation of angle degrees about the point
// (cx, cy). Equivalent to Translate(cx, cy), Rotate(angle),
// Translate(-cx, -cy) but built as a single matrix.
func (t *Transform) RotateAround(angle, cx, cy float64) *Transform {
	rad := angle * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return t.Combine(FromMatrix(
		cos, -sin, cx*(1-cos)+cy*sin,
		sin, cos, cy*(1-cos)-cx*sin,
		0, 0, 1,
	))
}

// Scale combines a scaling by (sx, sy) into the transform.
func (t *Transform) Scale(sx, sy float64) *Transform {
	return t.Combine(FromMatrix(
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	))
}

// ScaleAround combines a scaling by (sx, sy) about the point (cx, cy),
// built as a single matrix.
func (t *Transform) ScaleAround(sx, sy, cx, cy float64) *Transform {
	return t.Combine(FromMatrix(
		sx, 0, cx*(1-sx),
		0, sy, cy*(1-sy),
		0, 0, 1,
	))
}
