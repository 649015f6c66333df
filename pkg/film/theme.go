package film

import "image/color"

// GoldenRatio is used to derive the standard unit from the photo size.
const GoldenRatio = 1.61803398874989484820

// Theme holds the three colors every painter draws with.
type Theme struct {
	// Background fills padding and auxiliary canvases.
	Background color.Color
	// Primary is used for the first, emphasized line of a text block.
	Primary color.Color
	// Secondary is used for the remaining lines and separators.
	Secondary color.Color
}

// DefaultTheme returns white paper with black and gray text.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Primary:    color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Secondary:  color.RGBA{R: 125, G: 127, B: 124, A: 255},
	}
}

// OrDefault fills unset colors from DefaultTheme.
func (t Theme) OrDefault() Theme {
	d := DefaultTheme()
	if t.Background == nil {
		t.Background = d.Background
	}
	if t.Primary == nil {
		t.Primary = d.Primary
	}
	if t.Secondary == nil {
		t.Secondary = d.Secondary
	}
	return t
}

// StandardUnit returns floor(longest side / golden ratio / 16), the base
// length all painter geometry is derived from.
func StandardUnit(width, height int) int {
	long := width
	if height > long {
		long = height
	}
	if long <= 0 {
		return 0
	}
	return int(float64(long) / GoldenRatio / 16)
}
