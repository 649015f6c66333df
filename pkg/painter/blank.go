package painter

import (
	"fmt"

	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/film"
)

// Blank only adds the paper border: 3u on the anchor side and u, or
// nothing, on the others.
type Blank struct {
	res       Resources
	anchor    film.Position
	padAround bool
}

// NewBlank creates a Blank painter anchored to pos. PositionNone and
// PositionMiddle anchor to the bottom.
func NewBlank(res Resources, pos film.Position, padAround bool) *Blank {
	anchor := pos
	switch pos {
	case film.PositionTop, film.PositionLeft, film.PositionRight:
	default:
		anchor = film.PositionBottom
	}
	res = res.normalized()
	res.Logger = res.Logger.WithComponent("blank")
	return &Blank{res: res, anchor: anchor, padAround: padAround}
}

// Name implements Painter.
func (p *Blank) Name() string { return StyleBlank }

// Anchor implements Painter.
func (p *Blank) Anchor() film.Position { return p.anchor }

// Paint implements Painter. Metadata is ignored.
func (p *Blank) Paint(c *canvas.Canvas, _ film.Metadata) error {
	unit := film.StandardUnit(c.Width(), c.Height())
	thin := thinPadding(unit, p.padAround)
	pad := canvas.Padding{Top: thin, Bottom: thin, Left: thin, Right: thin}
	switch p.anchor {
	case film.PositionTop:
		pad.Top = 3 * unit
	case film.PositionLeft:
		pad.Left = 3 * unit
	case film.PositionRight:
		pad.Right = 3 * unit
	default:
		pad.Bottom = 3 * unit
	}
	p.res.Logger.Debug("Painting %dx%d photo: unit %d, padding %d/%d/%d/%d",
		c.Width(), c.Height(), unit, pad.Top, pad.Right, pad.Bottom, pad.Left)

	if err := c.AddPadding(pad, p.res.Theme.Background); err != nil {
		return fmt.Errorf("add padding: %w", err)
	}
	return nil
}

var _ Painter = (*Blank)(nil)
