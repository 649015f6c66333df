package canvas

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// NewFace returns a face of the given pixel size for f. Kerning is disabled
// so that drawn text is exactly as wide as MeasureText reports.
func NewFace(f *truetype.Font, sizePx float64) font.Face {
	return unkernedFace{truetype.NewFace(f, &truetype.Options{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingNone,
	})}
}

type unkernedFace struct {
	font.Face
}

func (unkernedFace) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// MeasureTextFixed returns the sum of the glyph advances of text.
func MeasureTextFixed(text string, face font.Face) fixed.Int26_6 {
	var width fixed.Int26_6
	for _, r := range text {
		if adv, ok := face.GlyphAdvance(r); ok {
			width += adv
		}
	}
	return width
}

// MeasureText returns the width of text in whole pixels, rounded up.
func MeasureText(text string, face font.Face) int {
	return MeasureTextFixed(text, face).Ceil()
}

// LineHeight returns ascent plus descent of face in whole pixels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// DrawText renders text with its line box's top-left corner at (x, y).
// Pixels falling outside the canvas are clipped.
func (c *Canvas) DrawText(x, y int, text string, face font.Face, col color.Color) {
	if text == "" || face == nil || c.Width() == 0 || c.Height() == 0 {
		return
	}
	ascent := float64(face.Metrics().Ascent) / 64
	dc := gg.NewContextForRGBA(c.img)
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(text, float64(x), float64(y)+ascent)
}
