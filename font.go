package scene2d

import (
	"bytes"
	"fmt"
	"io"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps a parsed vector font usable by Text. Fonts are immutable
// and safe to share between texts.
type Font struct {
	source *text.GoTextFaceSource
}

// LoadFont parses a TTF/OTF font from r.
func LoadFont(r io.Reader) (*Font, error) {
	src, err := text.NewGoTextFaceSource(r)
	if err != nil {
		return nil, fmt.Errorf("scene2d: parse font: %w", err)
	}
	return &Font{source: src}, nil
}

// LoadFontBytes parses a TTF/OTF font from b.
func LoadFontBytes(b []byte) (*Font, error) {
	return LoadFont(bytes.NewReader(b))
}

// DefaultFont builds a font from the embedded Go Regular typeface.
// Each call constructs a fresh Font; hold on to the result instead of
// calling this per frame.
func DefaultFont() (*Font, error) {
	return LoadFontBytes(goregular.TTF)
}

// face returns a sized face for measuring and drawing.
func (f *Font) face(size float64) *text.GoTextFace {
	if f == nil || f.source == nil {
		return nil
	}
	return &text.GoTextFace{Source: f.source, Size: size}
}
