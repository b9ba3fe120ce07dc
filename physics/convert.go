// Package physics bridges scene2d geometry to chipmunk (jakecoffman/cp)
// bodies and bounding boxes.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	scene2d "github.com/milk9111/scene2d"
	"github.com/milk9111/scene2d/geom"
)

// Vector converts a geom point to a chipmunk vector.
func Vector(v geom.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Vec2 converts a chipmunk vector to a geom point.
func Vec2(v cp.Vector) geom.Vec2 {
	return geom.Vec2{X: v.X, Y: v.Y}
}

// ToBB converts a rect to a chipmunk bounding box. The mapping is
// numeric: cp names its smaller Y "bottom", which on a Y-down screen is
// the rect's top edge.
func ToBB(r geom.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// FromBB converts a chipmunk bounding box to a rect.
func FromBB(bb cp.BB) geom.Rect {
	return geom.Rect{X: bb.L, Y: bb.B, W: bb.R - bb.L, H: bb.T - bb.B}
}

// SyncBody copies a body's position and angle onto t, converting the
// angle from radians to degrees. Call once per step after the space
// update, then draw using t's transform.
func SyncBody(t *scene2d.Transformable, body *cp.Body) {
	if t == nil || body == nil {
		return
	}
	pos := body.Position()
	t.SetPosition(pos.X, pos.Y)
	t.SetRotation(body.Angle() * 180 / math.Pi)
}
