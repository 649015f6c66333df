package painter

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/instantfilm/pkg/film"
)

var duelMetadata = film.Metadata{
	CameraModel: "X100V",
	LensModel:   "23mm F2",
	Artist:      "jane",
}

func TestDuel_Geometry(t *testing.T) {
	// 1000x800: u = 38
	tests := []struct {
		name      string
		pos       film.Position
		padAround bool
		height    int
		anchor    film.Position
	}{
		{"right without padding", film.PositionNone, false, 800, film.PositionRight},
		{"right with padding", film.PositionRight, true, 876, film.PositionRight},
		{"left without padding", film.PositionLeft, false, 800, film.PositionLeft},
		{"bottom falls back to right", film.PositionBottom, false, 800, film.PositionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDuel(testResources(t), tt.pos, tt.padAround, false)
			if p.Anchor() != tt.anchor {
				t.Errorf("expected anchor %v, got %v", tt.anchor, p.Anchor())
			}

			c := photo(1000, 800)
			if err := p.Paint(c, duelMetadata); err != nil {
				t.Fatalf("Paint failed: %v", err)
			}
			if c.Height() != tt.height {
				t.Errorf("expected height %d, got %d", tt.height, c.Height())
			}

			thin := 0
			if tt.padAround {
				thin = 38
			}
			bandW := c.Width() - 1000 - thin
			if bandW <= 76 {
				t.Fatalf("expected band wider than 2u, got %d", bandW)
			}

			var band image.Rectangle
			if tt.anchor == film.PositionLeft {
				checkPhotoAt(t, c, bandW, thin, 1000, 800)
				band = image.Rect(0, 0, bandW, c.Height())
			} else {
				checkPhotoAt(t, c, thin, thin, 1000, 800)
				band = image.Rect(thin+1000, 0, c.Width(), c.Height())
			}
			if count(c.Image(), band, isInk) == 0 {
				t.Error("expected text in the band")
			}
		})
	}
}

func TestDuel_EmptyMetadata(t *testing.T) {
	p := NewDuel(testResources(t), film.PositionRight, false, false)
	c := photo(1000, 800)

	if err := p.Paint(c, film.Metadata{}); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if c.Width() != 1076 || c.Height() != 800 {
		t.Errorf("expected 1076x800, got %dx%d", c.Width(), c.Height())
	}
	band := image.Rect(1000, 0, 1076, 800)
	if n := count(c.Image(), band, func(p color.RGBA) bool { return p != white }); n != 0 {
		t.Errorf("expected a blank band, got %d pixels", n)
	}
}

func TestDuel_BlockPlacement(t *testing.T) {
	tests := []struct {
		name     string
		pos      film.Position
		diagonal bool
		check    func(t *testing.T, first, last int)
	}{
		{"centered", film.PositionRight, false, func(t *testing.T, first, last int) {
			if first < 200 || last > 600 {
				t.Errorf("expected block around the vertical center, got rows %d-%d", first, last)
			}
		}},
		{"diagonal right sits at the bottom", film.PositionRight, true, func(t *testing.T, first, last int) {
			if first < 600 || last > 800-38 {
				t.Errorf("expected block near the bottom, got rows %d-%d", first, last)
			}
		}},
		{"diagonal left sits at the top", film.PositionLeft, true, func(t *testing.T, first, last int) {
			if first < 38 || last > 200 {
				t.Errorf("expected block near the top, got rows %d-%d", first, last)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDuel(testResources(t), tt.pos, false, tt.diagonal)
			c := photo(1000, 800)
			if err := p.Paint(c, duelMetadata); err != nil {
				t.Fatalf("Paint failed: %v", err)
			}
			bandW := c.Width() - 1000
			band := image.Rect(1000, 0, c.Width(), 800)
			if tt.pos == film.PositionLeft {
				band = image.Rect(0, 0, bandW, 800)
			}
			first, last := rowSpan(c.Image(), band, isInk)
			if first < 0 {
				t.Fatal("expected text in the band")
			}
			tt.check(t, first, last)
		})
	}
}

func TestDuel_LogoAboveText(t *testing.T) {
	p := NewDuel(testResources(t), film.PositionRight, false, false)
	c := photo(1000, 800)

	md := duelMetadata
	md.CameraMaker = "Leica Camera AG"
	if err := p.Paint(c, md); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	band := image.Rect(1000, 0, c.Width(), 800)
	_, logoLast := rowSpan(c.Image(), band, isRed)
	textFirst, _ := rowSpan(c.Image(), band, isInk)
	if logoLast < 0 {
		t.Fatal("expected the maker logo in the band")
	}
	if textFirst <= logoLast {
		t.Errorf("expected text below the logo, logo ends at %d and text starts at %d", logoLast, textFirst)
	}
}

func TestDuel_FirstLineIsEmphasized(t *testing.T) {
	p := NewDuel(testResources(t), film.PositionRight, false, false)
	c := photo(1000, 800)

	if err := p.Paint(c, film.Metadata{LensModel: "23mm F2", Artist: "jane"}); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	band := image.Rect(1000, 0, c.Width(), 800)
	first, last := rowSpan(c.Image(), band, isInk)
	if first < 0 {
		t.Fatal("expected the lens line in the primary color")
	}
	_, mutedLast := rowSpan(c.Image(), band, isMuted)
	if mutedLast <= last {
		t.Errorf("expected the muted attribution line below the primary line")
	}
}

func TestDuel_NoFont(t *testing.T) {
	p := NewDuel(Resources{}, film.PositionRight, false, true)
	if err := p.Paint(photo(100, 100), duelMetadata); !errors.Is(err, ErrNoFont) {
		t.Errorf("expected ErrNoFont, got %v", err)
	}
}

func TestDuel_LogoDroppedWhenBlockTooTall(t *testing.T) {
	p := NewDuel(testResources(t), film.PositionRight, false, false)
	c := photo(8000, 1000)

	md := duelMetadata
	md.CameraMaker = "Leica Camera AG"
	if err := p.Paint(c, md); err != nil {
		t.Fatalf("expected the photo to be painted without its logo, got %v", err)
	}

	if c.Height() != 1000 {
		t.Errorf("expected height 1000, got %d", c.Height())
	}
	band := image.Rect(8000, 0, c.Width(), 1000)
	if n := count(c.Image(), band, isRed); n != 0 {
		t.Errorf("expected the logo to be dropped, got %d pixels", n)
	}
	if count(c.Image(), band, isInk) == 0 {
		t.Error("expected the text lines in the band")
	}
}

func TestDuel_LogoKeptWhenBlockFits(t *testing.T) {
	p := NewDuel(testResources(t), film.PositionRight, false, false)
	c := photo(3000, 2000)

	md := duelMetadata
	md.CameraMaker = "Leica Camera AG"
	if err := p.Paint(c, md); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if count(c.Image(), image.Rect(3000, 0, c.Width(), 2000), isRed) == 0 {
		t.Error("expected the maker logo in the band")
	}
}
