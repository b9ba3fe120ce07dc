package scene2d

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/scene2d/geom"
)

// Text is a transformable string drawable. It needs an explicit Font;
// use DefaultFont for the built-in one.
type Text struct {
	Transformable

	value string
	font  *Font
	size  float64
	col   color.Color
}

// NewText creates a text with the given string, font and character
// size in pixels.
func NewText(value string, font *Font, size float64) *Text {
	return &Text{
		Transformable: *NewTransformable(),
		value:         value,
		font:          font,
		size:          size,
		col:           color.White,
	}
}

// Copy returns a deep copy. The font is shared.
func (t *Text) Copy() *Text {
	if t == nil {
		return NewText("", nil, 0)
	}
	c := *t
	return &c
}

// SetValue changes the displayed string.
func (t *Text) SetValue(value string) {
	if t == nil {
		return
	}
	t.value = value
}

// Value returns the displayed string.
func (t *Text) Value() string {
	if t == nil {
		return ""
	}
	return t.value
}

// SetFont changes the font.
func (t *Text) SetFont(font *Font) {
	if t == nil {
		return
	}
	t.font = font
}

// Font returns the font.
func (t *Text) Font() *Font {
	if t == nil {
		return nil
	}
	return t.font
}

// SetSize changes the character size in pixels.
func (t *Text) SetSize(size float64) {
	if t == nil {
		return
	}
	t.size = size
}

// Size returns the character size in pixels.
func (t *Text) Size() float64 {
	if t == nil {
		return 0
	}
	return t.size
}

// SetColor sets the fill color.
func (t *Text) SetColor(c color.Color) {
	if t == nil || c == nil {
		return
	}
	t.col = c
}

// Color returns the fill color.
func (t *Text) Color() color.Color {
	if t == nil {
		return color.White
	}
	return t.col
}

// LocalBounds returns the untransformed bounds of the laid-out string,
// anchored at (0, 0).
func (t *Text) LocalBounds() geom.Rect {
	face := t.faceOrNil()
	if face == nil {
		return geom.Rect{}
	}
	w, h := text.Measure(t.value, face, t.lineSpacing(face))
	return geom.R(0, 0, w, h)
}

// GlobalBounds returns the axis-aligned bounding box of the text in
// world space, with the full transform applied.
func (t *Text) GlobalBounds() geom.Rect {
	if t == nil {
		return geom.Rect{}
	}
	return t.Transform().TransformRect(t.LocalBounds())
}

// FindCharacterPos returns the world position of the index-th rune.
// An index past the end returns the position just after the last rune.
func (t *Text) FindCharacterPos(index int) geom.Vec2 {
	face := t.faceOrNil()
	if face == nil {
		return geom.Vec2{}
	}
	if index < 0 {
		index = 0
	}

	lines := strings.Split(t.value, "\n")

	x := 0.0
	y := 0.0
	remaining := index
	for i, line := range lines {
		runes := []rune(line)
		if remaining <= len(runes) {
			x = text.Advance(string(runes[:remaining]), face)
			break
		}
		if i == len(lines)-1 {
			// past the end: clamp to just after the last rune
			x = text.Advance(line, face)
			break
		}
		// +1 for the newline itself
		remaining -= len(runes) + 1
		y += t.lineSpacing(face)
	}

	return t.Transform().ApplyVec(geom.V(x, y))
}

// Draw renders the text onto dst. opts may be nil.
func (t *Text) Draw(dst *ebiten.Image, opts *DrawOptions) {
	face := t.faceOrNil()
	if face == nil || dst == nil || t.value == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM = GeoM(drawTransform(opts, t.Transform()))
	op.ColorScale.ScaleWithColor(t.col)
	op.Filter = drawFilter(opts)
	op.LineSpacing = t.lineSpacing(face)
	text.Draw(dst, t.value, face, op)
}

func (t *Text) faceOrNil() *text.GoTextFace {
	if t == nil || t.font == nil || t.size <= 0 {
		return nil
	}
	return t.font.face(t.size)
}

func (t *Text) lineSpacing(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
