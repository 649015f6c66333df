// Package canvas provides the pixel primitives painters are built from:
// solid canvases, padding, bounds-checked pasting, text and gradient lines.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrOutOfBounds is returned when a paste would write outside the canvas.
var ErrOutOfBounds = errors.New("canvas: out of bounds")

// Padding is the number of pixels added to each side of a canvas.
type Padding struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Canvas is a mutable RGBA pixel buffer whose bounds start at (0,0).
type Canvas struct {
	img *image.RGBA
}

// New creates a width x height canvas filled with bg.
func New(width, height int, bg color.Color) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// FromImage copies src into a new canvas anchored at the origin.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Canvas{img: img}
}

// Image returns the underlying buffer. The pointer changes after AddPadding.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// AddPadding grows the canvas by p, fills the new area with bg and keeps the
// previous content at (p.Left, p.Top).
func (c *Canvas) AddPadding(p Padding, bg color.Color) error {
	if p.Top < 0 || p.Bottom < 0 || p.Left < 0 || p.Right < 0 {
		return fmt.Errorf("canvas: negative padding %+v", p)
	}
	w, h := c.Width(), c.Height()
	padded := New(w+p.Left+p.Right, h+p.Top+p.Bottom, bg)
	dst := image.Rect(p.Left, p.Top, p.Left+w, p.Top+h)
	if !dst.In(padded.img.Bounds()) {
		return fmt.Errorf("%w: padding %+v", ErrOutOfBounds, p)
	}
	draw.Draw(padded.img, dst, c.img, image.Point{}, draw.Src)
	c.img = padded.img
	return nil
}

// Paste composites src over the canvas with its top-left corner at (x, y).
// The whole source must fit inside the canvas.
func (c *Canvas) Paste(src image.Image, x, y int) error {
	sb := src.Bounds()
	dst := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	if !dst.In(c.img.Bounds()) {
		return fmt.Errorf("%w: %dx%d at (%d,%d) on %dx%d canvas",
			ErrOutOfBounds, sb.Dx(), sb.Dy(), x, y, c.Width(), c.Height())
	}
	draw.Draw(c.img, dst, src, sb.Min, draw.Over)
	return nil
}
