// Package scene2d provides 2D transformable drawables (sprites, text)
// and the affine transform math behind them, built for ebiten games.
// The geometry convention throughout is top-left origin with Y growing
// downward; angles are in degrees and rotate clockwise.
package scene2d

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/scene2d/geom"
)

// DrawOptions carries per-draw state shared by Sprite and Text. The
// zero value draws in world space with nearest filtering.
type DrawOptions struct {
	// View is combined in front of the drawable's own transform,
	// typically Camera.View(). The zero Transform means no view.
	View geom.Transform

	Filter ebiten.Filter
}

// GeoM converts an affine transform to an ebiten matrix.
func GeoM(t geom.Transform) ebiten.GeoM {
	m := t.Matrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m[0]))
	g.SetElement(0, 1, float64(m[4]))
	g.SetElement(0, 2, float64(m[12]))
	g.SetElement(1, 0, float64(m[1]))
	g.SetElement(1, 1, float64(m[5]))
	g.SetElement(1, 2, float64(m[13]))
	return g
}

// drawTransform builds view * model from the options and a drawable's
// own transform.
func drawTransform(opts *DrawOptions, model geom.Transform) geom.Transform {
	if opts == nil || opts.View == (geom.Transform{}) {
		return model
	}
	full := opts.View
	full.Combine(model)
	return full
}

func drawFilter(opts *DrawOptions) ebiten.Filter {
	if opts == nil {
		return ebiten.FilterNearest
	}
	return opts.Filter
}
