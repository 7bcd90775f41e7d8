package textfit

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// PixelFace measures text in whole pixels using a font.Face.
//
// Widths are glyph advances plus kerning, rounded up. Runes the face has no
// advance for are skipped, the same way font.MeasureString does.
type PixelFace struct {
	name string
	face font.Face
}

// NewPixelFace wraps face. name must be unique per font and size.
func NewPixelFace(name string, face font.Face) *PixelFace {
	return &PixelFace{name: name, face: face}
}

// Name implements Face.
func (f *PixelFace) Name() string {
	return f.name
}

// Face returns the wrapped font face for drawing.
func (f *PixelFace) Face() font.Face {
	return f.face
}

// Measure implements Face.
func (f *PixelFace) Measure(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// Prefix implements Face.
func (f *PixelFace) Prefix(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	limit := fixed.I(maxWidth)
	var advance fixed.Int26_6
	prev := rune(-1)
	for i, r := range s {
		next := advance
		if prev >= 0 {
			next += f.face.Kern(prev, r)
		}
		a, ok := f.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		next += a
		if next > limit {
			return s[:i]
		}
		advance = next
		prev = r
	}
	return s
}
