package painter

import (
	"image"
	"image/color"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/logo"
)

var (
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gray  = color.RGBA{R: 125, G: 127, B: 124, A: 255}
)

func testFont(t *testing.T) *truetype.Font {
	t.Helper()
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse test font: %v", err)
	}
	return f
}

func solidImage(w, h int, c color.Color) image.Image {
	return canvas.New(w, h, c).Image()
}

// testResources returns a wide "canon" logo and a square "leica" logo.
func testResources(t *testing.T) Resources {
	return Resources{
		Font: testFont(t),
		Logos: logo.New(map[string]image.Image{
			"canon": solidImage(300, 100, red),
			"leica": solidImage(100, 100, red),
		}),
	}
}

func photo(w, h int) *canvas.Canvas {
	return canvas.New(w, h, blue)
}

func isInk(p color.RGBA) bool {
	return p.R < 64 && p.G < 64 && p.B < 64
}

func isMuted(p color.RGBA) bool {
	return p.R >= 100 && p.R < 230 && p.G >= p.R
}

func isRed(p color.RGBA) bool {
	return p.R > 200 && p.G < 60 && p.B < 60
}

func count(img *image.RGBA, r image.Rectangle, match func(color.RGBA) bool) int {
	r = r.Intersect(img.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

// rowSpan returns the first and last row in r holding a matching pixel.
func rowSpan(img *image.RGBA, r image.Rectangle, match func(color.RGBA) bool) (int, int) {
	first, last := -1, -1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				if first < 0 {
					first = y
				}
				last = y
				break
			}
		}
	}
	return first, last
}

func checkPhotoAt(t *testing.T, c *canvas.Canvas, x, y, w, h int) {
	t.Helper()
	img := c.Image()
	for _, p := range []image.Point{{x, y}, {x + w - 1, y}, {x, y + h - 1}, {x + w - 1, y + h - 1}} {
		if got := img.RGBAAt(p.X, p.Y); got != blue {
			t.Errorf("expected photo pixel at %v, got %v", p, got)
		}
	}
	for _, p := range []image.Point{{x - 1, y}, {x, y - 1}, {x + w, y}, {x, y + h}} {
		if !p.In(img.Bounds()) {
			continue
		}
		if got := img.RGBAAt(p.X, p.Y); got == blue {
			t.Errorf("expected no photo pixel at %v", p)
		}
	}
}
