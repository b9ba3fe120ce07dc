package scene2d

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/scene2d/geom"
)

// Sprite is a transformable drawable backed by an ebiten image, or a
// sub-rectangle of one.
type Sprite struct {
	Transformable

	img     *ebiten.Image
	texRect geom.Rect
	tint    color.Color
	flipX   bool
	flipY   bool
}

// NewSprite creates a sprite showing the whole of img. A nil img is
// allowed; the sprite draws nothing until SetImage.
func NewSprite(img *ebiten.Image) *Sprite {
	s := &Sprite{
		Transformable: *NewTransformable(),
		tint:          color.White,
	}
	s.SetImage(img, true)
	return s
}

// Copy returns a deep copy. The underlying image is shared.
func (s *Sprite) Copy() *Sprite {
	if s == nil {
		return NewSprite(nil)
	}
	c := *s
	return &c
}

// SetImage changes the source image. When resetRect is true the
// texture rectangle is reset to cover the whole image.
func (s *Sprite) SetImage(img *ebiten.Image, resetRect bool) {
	if s == nil {
		return
	}
	s.img = img
	if resetRect {
		if img != nil {
			b := img.Bounds()
			s.texRect = geom.R(0, 0, float64(b.Dx()), float64(b.Dy()))
		} else {
			s.texRect = geom.Rect{}
		}
	}
}

// Image returns the source image.
func (s *Sprite) Image() *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.img
}

// SetTextureRect restricts the sprite to a sub-rectangle of its image,
// in pixels relative to the image's top-left corner.
func (s *Sprite) SetTextureRect(r geom.Rect) {
	if s == nil {
		return
	}
	s.texRect = r
}

// TextureRect returns the displayed sub-rectangle.
func (s *Sprite) TextureRect() geom.Rect {
	if s == nil {
		return geom.Rect{}
	}
	return s.texRect
}

// SetColor sets the tint multiplied into every pixel.
func (s *Sprite) SetColor(c color.Color) {
	if s == nil || c == nil {
		return
	}
	s.tint = c
}

// Color returns the tint.
func (s *Sprite) Color() color.Color {
	if s == nil {
		return color.White
	}
	return s.tint
}

// SetFlip mirrors the sprite horizontally and/or vertically in its
// local frame, before any transform applies.
func (s *Sprite) SetFlip(x, y bool) {
	if s == nil {
		return
	}
	s.flipX = x
	s.flipY = y
}

// Flip returns the mirroring flags.
func (s *Sprite) Flip() (x, y bool) {
	if s == nil {
		return false, false
	}
	return s.flipX, s.flipY
}

// LocalBounds returns the untransformed bounds: the texture rectangle
// size anchored at (0, 0).
func (s *Sprite) LocalBounds() geom.Rect {
	if s == nil {
		return geom.Rect{}
	}
	return geom.R(0, 0, s.texRect.W, s.texRect.H)
}

// GlobalBounds returns the axis-aligned bounding box of the sprite in
// world space, with the full transform applied.
func (s *Sprite) GlobalBounds() geom.Rect {
	if s == nil {
		return geom.Rect{}
	}
	return s.Transform().TransformRect(s.LocalBounds())
}

// Draw renders the sprite onto dst. opts may be nil.
func (s *Sprite) Draw(dst *ebiten.Image, opts *DrawOptions) {
	if s == nil || dst == nil || s.img == nil {
		return
	}
	if s.texRect.W <= 0 || s.texRect.H <= 0 {
		return
	}

	src := s.img
	b := src.Bounds()
	sub := image.Rect(
		b.Min.X+int(s.texRect.X),
		b.Min.Y+int(s.texRect.Y),
		b.Min.X+int(s.texRect.X+s.texRect.W),
		b.Min.Y+int(s.texRect.Y+s.texRect.H),
	)
	if sub != b {
		src = s.img.SubImage(sub).(*ebiten.Image)
	}

	model := s.Transform()
	if s.flipX {
		model.Translate(s.texRect.W, 0).Scale(-1, 1)
	}
	if s.flipY {
		model.Translate(0, s.texRect.H).Scale(1, -1)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(drawTransform(opts, model))
	op.ColorScale.ScaleWithColor(s.tint)
	op.Filter = drawFilter(opts)
	dst.DrawImage(src, op)
}
