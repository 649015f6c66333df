package painter

import (
	"fmt"

	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/film"
)

// Triangular attaches a 3u band to the top or bottom of the photo. The band
// carries camera and lens on the left, exposure parameters and date on the
// right, and the maker logo with a separator in between.
type Triangular struct {
	res       Resources
	anchor    film.Position
	padAround bool
}

// NewTriangular creates a Triangular painter. Only PositionTop moves the
// band to the top; every other position keeps it at the bottom.
func NewTriangular(res Resources, pos film.Position, padAround bool) *Triangular {
	anchor := film.PositionBottom
	if pos == film.PositionTop {
		anchor = film.PositionTop
	}
	res = res.normalized()
	res.Logger = res.Logger.WithComponent("triangular")
	return &Triangular{res: res, anchor: anchor, padAround: padAround}
}

// Name implements Painter.
func (p *Triangular) Name() string { return StyleTriangular }

// Anchor implements Painter.
func (p *Triangular) Anchor() film.Position { return p.anchor }

// Paint implements Painter.
func (p *Triangular) Paint(c *canvas.Canvas, md film.Metadata) error {
	if p.res.Font == nil {
		return ErrNoFont
	}
	w, h := c.Width(), c.Height()
	unit := film.StandardUnit(w, h)
	thin := thinPadding(unit, p.padAround)

	pad := canvas.Padding{Top: thin, Bottom: 3 * unit, Left: thin, Right: thin}
	if p.anchor == film.PositionTop {
		pad.Top, pad.Bottom = pad.Bottom, pad.Top
	}
	p.res.Logger.Debug("Painting %dx%d photo: unit %d, padding %d/%d/%d/%d",
		w, h, unit, pad.Top, pad.Right, pad.Bottom, pad.Left)

	if err := c.AddPadding(pad, p.res.Theme.Background); err != nil {
		return fmt.Errorf("add padding: %w", err)
	}
	if unit == 0 {
		return nil
	}

	band, err := p.renderBand(w+2*thin, unit, thin, md)
	if err != nil {
		return err
	}

	y := h + pad.Top
	if p.anchor == film.PositionTop {
		y = 0
	}
	if err := c.Paste(band.Image(), 0, y); err != nil {
		return fmt.Errorf("paste content band: %w", err)
	}
	return nil
}

func (p *Triangular) renderBand(width, unit, thin int, md film.Metadata) (*canvas.Canvas, error) {
	theme := p.res.Theme
	sizePx := float64(unit) * 0.5
	primary, secondary := p.res.styles(sizePx)

	band := canvas.New(width, 3*unit, theme.Background)
	inner := canvas.Padding{Top: unit, Bottom: unit, Left: thin + unit/2, Right: thin + unit/2}

	left := renderLines(film.NonEmpty(film.CameraLine(md), film.LensLine(md)),
		primary, secondary, theme.Background, alignLeft)
	if left != nil {
		if err := band.Paste(left.Image(), inner.Left, inner.Top); err != nil {
			return nil, fmt.Errorf("paste camera block: %w", err)
		}
	}

	right := renderLines(film.NonEmpty(film.ParameterLine(md), film.TimestampLine(md)),
		primary, secondary, theme.Background, alignRight)
	rightX := width - inner.Right
	if right != nil {
		rightX -= right.Width()
		if err := band.Paste(right.Image(), rightX, inner.Top); err != nil {
			return nil, fmt.Errorf("paste parameter block: %w", err)
		}
	}

	logo := scaleLogo(p.res.Logos.Get(md.CameraMaker), sizePx, 0.75, 1.75)
	if logo == nil {
		return band, nil
	}
	lb := logo.Bounds()
	x := rightX - int(2*sizePx) - lb.Dx()
	y := inner.Top + (inner.Top-lb.Dy())/2
	if x < 0 {
		p.res.Logger.Debug("Skipping %dx%d logo: no room left of x=%d", lb.Dx(), lb.Dy(), rightX)
		return band, nil
	}
	if right != nil {
		thickness := int(sizePx / 32)
		if thickness < 1 {
			thickness = 1
		}
		band.DrawGradientVLine(rightX-int(sizePx), inner.Top, inner.Top, thickness,
			theme.Secondary, theme.Background)
	}
	p.res.Logger.Debug("Placing %dx%d logo at (%d,%d)", lb.Dx(), lb.Dy(), x, y)
	if err := band.Paste(logo, x, y); err != nil {
		return nil, fmt.Errorf("paste logo: %w", err)
	}
	return band, nil
}

var _ Painter = (*Triangular)(nil)
