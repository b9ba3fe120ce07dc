package scene2d

import (
	"math"

	"github.com/milk9111/scene2d/geom"
)

// Transformable holds the position, rotation, scale and origin of a 2D
// entity and derives the combined affine transform lazily. Sprite and
// Text embed it; anything else that needs the same decomposed state can
// embed or hold one too.
//
// Transformable is not safe for concurrent use. Instances are meant to
// be exclusively owned by whatever draws them.
type Transformable struct {
	position geom.Vec2
	rotation float64 // degrees, always in [0, 360)
	scale    geom.Vec2
	origin   geom.Vec2

	transform      geom.Transform
	inverse        geom.Transform
	transformDirty bool
	inverseDirty   bool
}

// NewTransformable returns a transformable at the origin with no
// rotation and unit scale.
func NewTransformable() *Transformable {
	return &Transformable{
		scale:          geom.V(1, 1),
		transformDirty: true,
		inverseDirty:   true,
	}
}

// Copy returns a deep copy.
func (t *Transformable) Copy() *Transformable {
	if t == nil {
		return NewTransformable()
	}
	c := *t
	return &c
}

// SetPosition overwrites the position. Use Move to apply an offset to
// the current position instead.
func (t *Transformable) SetPosition(x, y float64) {
	if t == nil {
		return
	}
	t.position = geom.V(x, y)
	t.markDirty()
}

// Position returns the current position.
func (t *Transformable) Position() geom.Vec2 {
	if t == nil {
		return geom.Vec2{}
	}
	return t.position
}

// SetRotation overwrites the rotation with angle degrees, normalized
// into [0, 360). Use Rotate to add to the current rotation instead.
func (t *Transformable) SetRotation(angle float64) {
	if t == nil {
		return
	}
	t.rotation = normalizeDegrees(angle)
	t.markDirty()
}

// Rotation returns the current rotation in degrees, in [0, 360).
func (t *Transformable) Rotation() float64 {
	if t == nil {
		return 0
	}
	return t.rotation
}

// SetScale overwrites the scale factors. Use ScaleBy to multiply the
// current factors instead.
func (t *Transformable) SetScale(sx, sy float64) {
	if t == nil {
		return
	}
	t.scale = geom.V(sx, sy)
	t.markDirty()
}

// Scale returns the current scale factors.
func (t *Transformable) Scale() geom.Vec2 {
	if t == nil {
		return geom.V(1, 1)
	}
	return t.scale
}

// SetOrigin sets the local origin, the point all transformations pivot
// around, relative to the entity's untransformed top-left corner.
func (t *Transformable) SetOrigin(x, y float64) {
	if t == nil {
		return
	}
	t.origin = geom.V(x, y)
	t.markDirty()
}

// Origin returns the local origin.
func (t *Transformable) Origin() geom.Vec2 {
	if t == nil {
		return geom.Vec2{}
	}
	return t.origin
}

// Move offsets the current position by (dx, dy).
func (t *Transformable) Move(dx, dy float64) {
	if t == nil {
		return
	}
	t.position = t.position.Add(geom.V(dx, dy))
	t.markDirty()
}

// Rotate adds angle degrees to the current rotation.
func (t *Transformable) Rotate(angle float64) {
	if t == nil {
		return
	}
	t.rotation = normalizeDegrees(t.rotation + angle)
	t.markDirty()
}

// ScaleBy multiplies the current scale factors by (fx, fy).
func (t *Transformable) ScaleBy(fx, fy float64) {
	if t == nil {
		return
	}
	t.scale = geom.V(t.scale.X*fx, t.scale.Y*fy)
	t.markDirty()
}

// Transform returns the combined transform,
// translate(position) * rotate(rotation) * scale(scale) * translate(-origin),
// recomputing it only when an attribute changed since the last call.
func (t *Transformable) Transform() geom.Transform {
	if t == nil {
		return geom.Identity()
	}
	if t.transformDirty {
		rad := t.rotation * math.Pi / 180
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		a00 := t.scale.X * cos
		a01 := -t.scale.Y * sin
		a10 := t.scale.X * sin
		a11 := t.scale.Y * cos
		tx := -t.origin.X*a00 - t.origin.Y*a01 + t.position.X
		ty := -t.origin.X*a10 - t.origin.Y*a11 + t.position.Y

		t.transform = geom.FromMatrix(
			a00, a01, tx,
			a10, a11, ty,
			0, 0, 1,
		)
		t.transformDirty = false
	}
	return t.transform
}

// InverseTransform returns the inverse of Transform, cached the same
// way. A degenerate transform (zero scale) yields the identity.
func (t *Transformable) InverseTransform() geom.Transform {
	if t == nil {
		return geom.Identity()
	}
	if t.inverseDirty {
		t.inverse = t.Transform().Inverse()
		t.inverseDirty = false
	}
	return t.inverse
}

func (t *Transformable) markDirty() {
	t.transformDirty = true
	t.inverseDirty = true
}

// normalizeDegrees wraps angle into [0, 360). The double Mod keeps
// exact multiples of 360 from coming out as -0.
func normalizeDegrees(angle float64) float64 {
	return math.Mod(math.Mod(angle, 360)+360, 360)
}
