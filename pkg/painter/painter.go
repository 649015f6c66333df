// Package painter turns a photo and its metadata into an instant-film print.
// Each painter pads the photo, renders a content band with metadata text and
// the maker's logo, and pastes the band next to the photo.
package painter

import (
	"errors"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/user/instantfilm/pkg/adapters/logger"
	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/logo"
	"github.com/user/instantfilm/pkg/ports"
)

// ErrNoFont is returned by text painters created without a main font.
var ErrNoFont = errors.New("painter: no font configured")

// Painter renders a border and metadata onto a canvas in place.
// Implementations hold only read-only state and may be shared by goroutines.
type Painter interface {
	// Paint grows c and draws md onto it.
	Paint(c *canvas.Canvas, md film.Metadata) error

	// Name returns the style name the painter was created for.
	Name() string

	// Anchor returns the side the content band is attached to.
	Anchor() film.Position
}

// Resources are the shared, read-only inputs of every painter.
type Resources struct {
	// Font renders emphasized lines. Required by text painters.
	Font *truetype.Font
	// SubFont renders the remaining lines. Falls back to Font.
	SubFont *truetype.Font
	// Logos is looked up by camera maker. May be nil.
	Logos *logo.Cache
	// Theme colors. Unset colors use film.DefaultTheme.
	Theme film.Theme
	// Logger receives per-photo geometry at debug level. May be nil.
	Logger ports.Logger
}

func (r Resources) normalized() Resources {
	r.Theme = r.Theme.OrDefault()
	if r.Logger == nil {
		r.Logger = logger.NewDiscard()
	}
	return r
}

// textStyle is the face and color of one line.
type textStyle struct {
	face  font.Face
	color color.Color
}

// styles returns the emphasized and muted line styles for a font size.
func (r Resources) styles(sizePx float64) (primary, secondary textStyle) {
	main := canvas.NewFace(r.Font, sizePx)
	sub := main
	if r.SubFont != nil {
		sub = canvas.NewFace(r.SubFont, sizePx)
	}
	return textStyle{face: main, color: r.Theme.Primary}, textStyle{face: sub, color: r.Theme.Secondary}
}

type align int

const (
	alignLeft align = iota
	alignRight
	alignCenter
)

// renderLines draws one line per row on a new canvas sized to fit them.
// The first line uses primary and the others secondary. It returns nil when
// there is nothing to draw.
func renderLines(lines []string, primary, secondary textStyle, bg color.Color, a align) *canvas.Canvas {
	if len(lines) == 0 {
		return nil
	}
	lineHeight := canvas.LineHeight(primary.face)
	if h := canvas.LineHeight(secondary.face); h > lineHeight {
		lineHeight = h
	}

	styleOf := func(i int) textStyle {
		if i == 0 {
			return primary
		}
		return secondary
	}

	widths := make([]int, len(lines))
	width := 0
	for i, line := range lines {
		widths[i] = canvas.MeasureText(line, styleOf(i).face)
		if widths[i] > width {
			width = widths[i]
		}
	}
	if width == 0 || lineHeight == 0 {
		return nil
	}

	block := canvas.New(width, lineHeight*len(lines), bg)
	for i, line := range lines {
		x := 0
		switch a {
		case alignRight:
			x = width - widths[i]
		case alignCenter:
			x = (width - widths[i]) / 2
		}
		s := styleOf(i)
		block.DrawText(x, i*lineHeight, line, s.face, s.color)
	}
	return block
}

// scaleLogo resizes img to wideFactor x sizePx high, or squareFactor x sizePx
// when its aspect ratio is 1.5 or less, keeping the aspect ratio.
func scaleLogo(img image.Image, sizePx, wideFactor, squareFactor float64) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	aspect := float64(b.Dx()) / float64(b.Dy())
	height := sizePx * wideFactor
	if aspect <= 1.5 {
		height = sizePx * squareFactor
	}
	return canvas.Resize(img, int(height*aspect), int(height))
}

func thinPadding(unit int, padAround bool) int {
	if padAround {
		return unit
	}
	return 0
}
