package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func sampleTransform() Transform {
	t := Identity()
	t.Translate(10, -4).Rotate(30).Scale(2, 0.5)
	return t
}

func TestIdentityFixpoints(t *testing.T) {
	id := Identity()

	points := []Vec2{
		{0, 0},
		{1, 0},
		{-3.5, 12},
		{1e6, -1e6},
	}
	for _, p := range points {
		got := id.ApplyVec(p)
		assert.InDelta(t, p.X, got.X, delta)
		assert.InDelta(t, p.Y, got.Y, delta)
	}

	r := R(-2, 3, 7, 11)
	assert.Equal(t, r, id.TransformRect(r))
}

func TestFromMatrixAndMatrixLayout(t *testing.T) {
	tr := FromMatrix(
		1, 2, 3,
		4, 5, 6,
		0, 0, 1,
	)

	x, y := tr.Apply(10, 100)
	assert.InDelta(t, 1*10+2*100+3, x, delta)
	assert.InDelta(t, 4*10+5*100+6, y, delta)

	// column-major 4x4: translation lands in elements 12 and 13, the z
	// row and column stay identity.
	m := tr.Matrix()
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(4), m[1])
	assert.Equal(t, float32(2), m[4])
	assert.Equal(t, float32(5), m[5])
	assert.Equal(t, float32(1), m[10])
	assert.Equal(t, float32(3), m[12])
	assert.Equal(t, float32(6), m[13])
	assert.Equal(t, float32(1), m[15])
}

func TestRotationConvention(t *testing.T) {
	// Y grows downward, so positive angles turn clockwise on screen:
	// 90 degrees sends (1,0) to (0,1).
	rot := Identity()
	rot.Rotate(90)

	x, y := rot.Apply(1, 0)
	assert.InDelta(t, 0, x, delta)
	assert.InDelta(t, 1, y, delta)
}

func TestCombineAssociativeNotCommutative(t *testing.T) {
	a := Identity()
	a.Rotate(37).Translate(3, 1)
	b := Identity()
	b.Scale(2, 5)
	c := Identity()
	c.Translate(-8, 2).Rotate(-105)

	ab := a
	ab.Combine(b)
	abThenC := ab
	abThenC.Combine(c)

	bc := b
	bc.Combine(c)
	aThenBC := a
	aThenBC.Combine(bc)

	ba := b
	ba.Combine(a)

	p := V(3.5, -2)
	left := abThenC.ApplyVec(p)
	right := aThenBC.ApplyVec(p)
	assert.InDelta(t, left.X, right.X, 1e-9)
	assert.InDelta(t, left.Y, right.Y, 1e-9)

	pab := ab.ApplyVec(p)
	pba := ba.ApplyVec(p)
	assert.Greater(t, math.Abs(pab.X-pba.X)+math.Abs(pab.Y-pba.Y), 1e-6)
}

func TestInverseRoundTrips(t *testing.T) {
	tr := sampleTransform()

	inv, ok := tr.InverseChecked()
	require.True(t, ok)

	// T then T^-1 is the identity on points.
	p := V(7, -13)
	q := inv.ApplyVec(tr.ApplyVec(p))
	assert.InDelta(t, p.X, q.X, 1e-9)
	assert.InDelta(t, p.Y, q.Y, 1e-9)

	// (T^-1)^-1 == T on points.
	back := inv.Inverse()
	b := back.ApplyVec(p)
	orig := tr.ApplyVec(p)
	assert.InDelta(t, orig.X, b.X, 1e-9)
	assert.InDelta(t, orig.Y, b.Y, 1e-9)
}

func TestSingularInverseFallsBackToIdentity(t *testing.T) {
	cases := []struct {
		name string
		tr   Transform
	}{
		{"zero_scale", func() Transform { t := Identity(); t.Scale(0, 0); return t }()},
		{"collapsed_axis", func() Transform { t := Identity(); t.Scale(1, 0); return t }()},
		{"tiny_det", func() Transform { t := Identity(); t.Scale(1e-12, 1e-12); return t }()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := c.tr.InverseChecked()
			assert.False(t, ok)
			assert.Equal(t, Identity(), c.tr.Inverse())
		})
	}
}

func TestTransformRectRotated(t *testing.T) {
	rot := Identity()
	rot.Rotate(45)

	// the sides must not be too lopsided: the rotated box only beats
	// the original in both dimensions when h > w*(sqrt2-1) and vice
	// versa, since the 45-degree AABB is a (w+h)/sqrt2 square
	r := R(0, 0, 10, 8)
	bb := rot.TransformRect(r)

	assert.Greater(t, bb.W, r.W)
	assert.Greater(t, bb.H, r.H)

	want := (r.W + r.H) / math.Sqrt2
	assert.InDelta(t, want, bb.W, 1e-9)
	assert.InDelta(t, want, bb.H, 1e-9)
}

func TestCenteredVariantsMatchComposition(t *testing.T) {
	const cx, cy = 5, -3

	fused := Identity()
	fused.RotateAround(60, cx, cy)

	composed := Identity()
	composed.Translate(cx, cy).Rotate(60).Translate(-cx, -cy)

	p := V(2, 9)
	a := fused.ApplyVec(p)
	b := composed.ApplyVec(p)
	assert.InDelta(t, a.X, b.X, 1e-9)
	assert.InDelta(t, a.Y, b.Y, 1e-9)

	fusedS := Identity()
	fusedS.ScaleAround(3, 0.25, cx, cy)

	composedS := Identity()
	composedS.Translate(cx, cy).Scale(3, 0.25).Translate(-cx, -cy)

	a = fusedS.ApplyVec(p)
	b = composedS.ApplyVec(p)
	assert.InDelta(t, a.X, b.X, 1e-9)
	assert.InDelta(t, a.Y, b.Y, 1e-9)

	// the center itself stays put under both
	c := fused.ApplyVec(V(cx, cy))
	assert.InDelta(t, cx, c.X, 1e-9)
	assert.InDelta(t, cy, c.Y, 1e-9)
}

func TestDet(t *testing.T) {
	s := Identity()
	s.Scale(2, 3)
	assert.InDelta(t, 6, s.Det(), delta)

	r := Identity()
	r.Rotate(123)
	assert.InDelta(t, 1, r.Det(), delta)
}
