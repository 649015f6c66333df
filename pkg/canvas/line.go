package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// DrawGradientVLine draws a vertical bar centered on column x, from row y
// down for length rows. With half = thickness/2 it covers columns x-half
// through x+half, so even thicknesses come out one column wider. Each column
// is colored by its distance from x: start at the center, end at x±half.
func (c *Canvas) DrawGradientVLine(x, y, length, thickness int, start, end color.Color) {
	if length <= 0 || thickness <= 0 {
		return
	}
	s := color.RGBAModel.Convert(start).(color.RGBA)
	e := color.RGBAModel.Convert(end).(color.RGBA)
	half := thickness / 2
	bounds := c.img.Bounds()

	for px := x - half; px <= x+half; px++ {
		if px < bounds.Min.X || px >= bounds.Max.X {
			continue
		}
		t := 0.0
		if half > 0 {
			t = math.Abs(float64(px-x)) / float64(half)
		}
		col := lerpRGBA(s, e, t)
		for py := y; py < y+length; py++ {
			if py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			c.img.SetRGBA(px, py, col)
		}
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Resize scales img to exactly width x height with a Lanczos filter.
// It returns nil when either dimension is not positive.
func Resize(img image.Image, width, height int) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
