package scene2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/scene2d/geom"
)

func TestTransformableDefaults(t *testing.T) {
	tr := NewTransformable()

	assert.Equal(t, geom.V(0, 0), tr.Position())
	assert.Equal(t, float64(0), tr.Rotation())
	assert.Equal(t, geom.V(1, 1), tr.Scale())
	assert.Equal(t, geom.V(0, 0), tr.Origin())
	assert.Equal(t, geom.Identity(), tr.Transform())
}

func TestTransformablePureTranslation(t *testing.T) {
	tr := NewTransformable()
	tr.SetPosition(10, 5)

	x, y := tr.Transform().Apply(0, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
}

func TestTransformableRotationDirection(t *testing.T) {
	// clockwise with Y down: 90 degrees sends the +X axis to +Y
	tr := NewTransformable()
	tr.SetRotation(90)

	x, y := tr.Transform().Apply(1, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
}

func TestRotationNormalization(t *testing.T) {
	cases := []struct {
		name string
		set  float64
		want float64
	}{
		{"wraps_over", 450, 90},
		{"negative", -90, 270},
		{"full_turn", 360, 0},
		{"many_turns", 1080 + 45, 45},
		{"unchanged", 123.5, 123.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := NewTransformable()
			tr.SetRotation(c.set)
			assert.InDelta(t, c.want, tr.Rotation(), 1e-9)
		})
	}
}

func TestRelativeMutatorsCompose(t *testing.T) {
	tr := NewTransformable()

	tr.SetPosition(10, 10)
	tr.Move(-3, 4)
	assert.Equal(t, geom.V(7, 14), tr.Position())

	tr.SetRotation(350)
	tr.Rotate(20)
	assert.InDelta(t, 10, tr.Rotation(), 1e-9)

	tr.SetScale(2, 3)
	tr.ScaleBy(2, 0.5)
	assert.Equal(t, geom.V(4, 1.5), tr.Scale())
}

func TestTransformMatchesComposition(t *testing.T) {
	tr := NewTransformable()
	tr.SetPosition(100, 50)
	tr.SetRotation(30)
	tr.SetScale(2, 0.5)
	tr.SetOrigin(16, 16)

	// translate(position) * rotate(rotation) * scale(scale) * translate(-origin)
	want := geom.Identity()
	want.Translate(100, 50).Rotate(30).Scale(2, 0.5).Translate(-16, -16)

	for _, p := range []geom.Vec2{{X: 0, Y: 0}, {X: 16, Y: 16}, {X: 32, Y: 0}, {X: -5, Y: 40}} {
		a := tr.Transform().ApplyVec(p)
		b := want.ApplyVec(p)
		assert.InDelta(t, b.X, a.X, 1e-9)
		assert.InDelta(t, b.Y, a.Y, 1e-9)
	}

	// the origin lands exactly on the position
	o := tr.Transform().ApplyVec(geom.V(16, 16))
	assert.InDelta(t, 100, o.X, 1e-9)
	assert.InDelta(t, 50, o.Y, 1e-9)
}

func TestTransformCacheTracksMutations(t *testing.T) {
	tr := NewTransformable()
	tr.SetPosition(1, 2)
	first := tr.Transform()

	// unchanged state returns the identical matrix
	assert.Equal(t, first, tr.Transform())

	tr.Move(1, 0)
	second := tr.Transform()
	x, _ := second.Apply(0, 0)
	assert.InDelta(t, 2, x, 1e-9)

	for _, mutate := range []func(){
		func() { tr.SetRotation(45) },
		func() { tr.SetScale(3, 3) },
		func() { tr.SetOrigin(5, 5) },
		func() { tr.ScaleBy(0.5, 0.5) },
		func() { tr.Rotate(-45) },
	} {
		before := tr.Transform()
		mutate()
		assert.NotEqual(t, before, tr.Transform())
	}
}

func TestInverseTransformRoundTrip(t *testing.T) {
	tr := NewTransformable()
	tr.SetPosition(42, -7)
	tr.SetRotation(77)
	tr.SetScale(1.5, 2.5)
	tr.SetOrigin(3, 9)

	p := geom.V(12, 34)
	q := tr.InverseTransform().ApplyVec(tr.Transform().ApplyVec(p))
	assert.InDelta(t, p.X, q.X, 1e-9)
	assert.InDelta(t, p.Y, q.Y, 1e-9)
}

func TestInverseTransformSingularFallback(t *testing.T) {
	tr := NewTransformable()
	tr.SetScale(0, 0)

	assert.Equal(t, geom.Identity(), tr.InverseTransform())
}

func TestTransformableCopyIsIndependent(t *testing.T) {
	tr := NewTransformable()
	tr.SetPosition(5, 6)
	tr.SetRotation(10)

	c := tr.Copy()
	require.NotNil(t, c)
	c.SetPosition(50, 60)
	c.Rotate(35)

	assert.Equal(t, geom.V(5, 6), tr.Position())
	assert.InDelta(t, 10, tr.Rotation(), 1e-9)
	assert.Equal(t, geom.V(50, 60), c.Position())
	assert.InDelta(t, 45, c.Rotation(), 1e-9)
}

func TestNilTransformableIsSafe(t *testing.T) {
	var tr *Transformable

	tr.SetPosition(1, 2)
	tr.Move(3, 4)
	tr.SetRotation(90)
	tr.Rotate(10)
	tr.SetScale(2, 2)
	tr.ScaleBy(2, 2)
	tr.SetOrigin(1, 1)

	assert.Equal(t, geom.Vec2{}, tr.Position())
	assert.Equal(t, float64(0), tr.Rotation())
	assert.Equal(t, geom.V(1, 1), tr.Scale())
	assert.Equal(t, geom.Vec2{}, tr.Origin())
	assert.Equal(t, geom.Identity(), tr.Transform())
	assert.Equal(t, geom.Identity(), tr.InverseTransform())
	assert.NotNil(t, tr.Copy())
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 0, normalizeDegrees(0), 1e-12)
	assert.InDelta(t, 359, normalizeDegrees(-1), 1e-12)
	assert.InDelta(t, 0.5, normalizeDegrees(720.5), 1e-12)
	assert.False(t, math.Signbit(normalizeDegrees(-360)))
}
