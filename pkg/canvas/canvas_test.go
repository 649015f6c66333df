package canvas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	gray  = color.RGBA{R: 125, G: 127, B: 124, A: 255}
)

func testFace(t *testing.T, size float64) font.Face {
	t.Helper()
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse test font: %v", err)
	}
	return NewFace(f, size)
}

func TestNew(t *testing.T) {
	c := New(40, 20, red)
	if c.Width() != 40 || c.Height() != 20 {
		t.Fatalf("expected 40x20, got %dx%d", c.Width(), c.Height())
	}
	if got := c.Image().RGBAAt(39, 19); got != red {
		t.Errorf("expected red fill, got %v", got)
	}
}

func TestFromImage_MovesOriginToZero(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 20, 15))
	src.SetRGBA(10, 10, red)
	c := FromImage(src)
	if c.Image().Bounds().Min != (image.Point{}) {
		t.Errorf("expected origin at (0,0), got %v", c.Image().Bounds().Min)
	}
	if c.Width() != 10 || c.Height() != 5 {
		t.Errorf("expected 10x5, got %dx%d", c.Width(), c.Height())
	}
	if got := c.Image().RGBAAt(0, 0); got != red {
		t.Errorf("expected red at origin, got %v", got)
	}
}

func TestAddPadding(t *testing.T) {
	c := New(10, 10, red)
	before := c.Image()

	err := c.AddPadding(Padding{Top: 1, Bottom: 5, Left: 2, Right: 3}, white)
	if err != nil {
		t.Fatalf("AddPadding failed: %v", err)
	}

	if c.Width() != 15 || c.Height() != 16 {
		t.Errorf("expected 15x16, got %dx%d", c.Width(), c.Height())
	}
	if c.Image() == before {
		t.Error("expected buffer to be replaced")
	}
	if got := c.Image().RGBAAt(2, 1); got != red {
		t.Errorf("expected original pixel at (2,1), got %v", got)
	}
	if got := c.Image().RGBAAt(11, 10); got != red {
		t.Errorf("expected original pixel at (11,10), got %v", got)
	}
	for _, p := range []image.Point{{0, 0}, {14, 15}, {1, 5}, {12, 5}, {5, 11}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != white {
			t.Errorf("expected background at %v, got %v", p, got)
		}
	}
}

func TestAddPadding_Zero(t *testing.T) {
	c := New(7, 3, red)
	if err := c.AddPadding(Padding{}, white); err != nil {
		t.Fatalf("AddPadding failed: %v", err)
	}
	if c.Width() != 7 || c.Height() != 3 {
		t.Errorf("expected 7x3, got %dx%d", c.Width(), c.Height())
	}
}

func TestAddPadding_Negative(t *testing.T) {
	c := New(7, 3, red)
	if err := c.AddPadding(Padding{Left: -1}, white); err == nil {
		t.Error("expected error for negative padding")
	}
}

func TestPaste(t *testing.T) {
	dst := New(20, 20, white)
	src := New(5, 5, red)

	if err := dst.Paste(src.Image(), 15, 15); err != nil {
		t.Fatalf("Paste failed: %v", err)
	}
	if got := dst.Image().RGBAAt(19, 19); got != red {
		t.Errorf("expected red at (19,19), got %v", got)
	}
	if got := dst.Image().RGBAAt(14, 14); got != white {
		t.Errorf("expected white at (14,14), got %v", got)
	}
}

func TestPaste_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"overflows right", 16, 0},
		{"overflows bottom", 0, 16},
		{"negative x", -1, 0},
		{"negative y", 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := New(20, 20, white)
			err := dst.Paste(New(5, 5, red).Image(), tt.x, tt.y)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("expected ErrOutOfBounds, got %v", err)
			}
			if got := dst.Image().RGBAAt(0, 0); got != white {
				t.Errorf("expected canvas untouched, got %v", got)
			}
		})
	}
}

func TestPaste_BlendsTransparentPixels(t *testing.T) {
	dst := New(4, 4, white)
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})

	if err := dst.Paste(src, 0, 0); err != nil {
		t.Fatalf("Paste failed: %v", err)
	}
	if got := dst.Image().RGBAAt(0, 0); got != white {
		t.Errorf("expected transparent pixel to keep background, got %v", got)
	}
	if got := dst.Image().RGBAAt(1, 1); got != red {
		t.Errorf("expected opaque pixel to be copied, got %v", got)
	}
}

func TestResize(t *testing.T) {
	img := Resize(New(100, 50, red).Image(), 30, 15)
	if img == nil {
		t.Fatal("expected resized image")
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 15 {
		t.Errorf("expected 30x15, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if Resize(New(10, 10, red).Image(), 0, 5) != nil {
		t.Error("expected nil for zero width")
	}
}
