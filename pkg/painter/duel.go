package painter

import (
	"fmt"
	"image"

	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/film"
)

// Duel attaches a vertical band to the left or right of the photo, holding
// the logo above centered lines: camera, lens, parameters, attribution.
// The diagonal variant pushes the block into the band corner farthest from
// the photo's top-left.
type Duel struct {
	res       Resources
	anchor    film.Position
	padAround bool
	diagonal  bool
}

// NewDuel creates a Duel painter. Only PositionLeft moves the band to the
// left; every other position keeps it on the right.
func NewDuel(res Resources, pos film.Position, padAround, diagonal bool) *Duel {
	anchor := film.PositionRight
	if pos == film.PositionLeft {
		anchor = film.PositionLeft
	}
	res = res.normalized()
	name := StyleDuel
	if diagonal {
		name = StyleDiagonal
	}
	res.Logger = res.Logger.WithComponent(name)
	return &Duel{res: res, anchor: anchor, padAround: padAround, diagonal: diagonal}
}

// Name implements Painter.
func (p *Duel) Name() string {
	if p.diagonal {
		return StyleDiagonal
	}
	return StyleDuel
}

// Anchor implements Painter.
func (p *Duel) Anchor() film.Position { return p.anchor }

// Paint implements Painter.
func (p *Duel) Paint(c *canvas.Canvas, md film.Metadata) error {
	if p.res.Font == nil {
		return ErrNoFont
	}
	w, h := c.Width(), c.Height()
	unit := film.StandardUnit(w, h)
	thin := thinPadding(unit, p.padAround)

	bandH := h + 2*thin
	var block *canvas.Canvas
	if unit > 0 {
		block = p.renderBlock(unit, md, true)
		if block != nil && block.Height() > bandH {
			p.res.Logger.Debug("Dropping logo: block height %d exceeds band height %d", block.Height(), bandH)
			block = p.renderBlock(unit, md, false)
		}
	}
	bandW := 2 * unit
	if block != nil {
		bandW += block.Width()
	}

	pad := canvas.Padding{Top: thin, Bottom: thin, Left: thin, Right: bandW}
	bandX := w + thin
	if p.anchor == film.PositionLeft {
		pad.Left, pad.Right = bandW, thin
		bandX = 0
	}
	p.res.Logger.Debug("Painting %dx%d photo: unit %d, band %dx%d", w, h, unit, bandW, bandH)

	if err := c.AddPadding(pad, p.res.Theme.Background); err != nil {
		return fmt.Errorf("add padding: %w", err)
	}
	if block == nil {
		return nil
	}

	band := canvas.New(bandW, bandH, p.res.Theme.Background)
	y := (bandH - block.Height()) / 2
	if p.diagonal {
		if p.anchor == film.PositionLeft {
			y = unit
		} else {
			y = bandH - block.Height() - unit
		}
		if y < 0 {
			y = 0
		}
	}
	if err := band.Paste(block.Image(), unit, y); err != nil {
		return fmt.Errorf("paste content block: %w", err)
	}
	if err := c.Paste(band.Image(), bandX, 0); err != nil {
		return fmt.Errorf("paste content band: %w", err)
	}
	return nil
}

// renderBlock stacks the logo, a blank line and the text lines, all
// horizontally centered. It returns nil when there is neither.
func (p *Duel) renderBlock(unit int, md film.Metadata, withLogo bool) *canvas.Canvas {
	theme := p.res.Theme
	sizePx := float64(unit) * 0.5
	primary, secondary := p.res.styles(sizePx)

	lines := film.NonEmpty(
		film.CameraLine(md),
		film.LensLine(md),
		film.ParameterLine(md),
		film.AttributionLine(md),
	)
	text := renderLines(lines, primary, secondary, theme.Background, alignCenter)
	var logo image.Image
	if withLogo {
		logo = scaleLogo(p.res.Logos.Get(md.CameraMaker), sizePx, 1.5, 3)
	}
	if text == nil && logo == nil {
		return nil
	}

	width, height, logoH, spacer := 0, 0, 0, 0
	if logo != nil {
		width = logo.Bounds().Dx()
		logoH = logo.Bounds().Dy()
		height = logoH
	}
	if text != nil {
		if text.Width() > width {
			width = text.Width()
		}
		if logo != nil {
			spacer = canvas.LineHeight(primary.face)
		}
		height += spacer + text.Height()
	}

	block := canvas.New(width, height, theme.Background)
	if logo != nil {
		// both fit by construction
		_ = block.Paste(logo, (width-logo.Bounds().Dx())/2, 0)
	}
	if text != nil {
		_ = block.Paste(text.Image(), (width-text.Width())/2, logoH+spacer)
	}
	return block
}

var _ Painter = (*Duel)(nil)
