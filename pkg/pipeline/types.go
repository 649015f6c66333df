package pipeline

import (
	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/ports"
)

// DevelopOptions selects the painter and the output encoding of a photo.
type DevelopOptions struct {
	Style     string        // Painter style name (default: triangular)
	Position  film.Position // Anchor, PositionNone for the painter default
	PadAround bool          // Thin padding on the non-anchor sides
	Format    ports.ImageFormat
	Quality   int // JPEG quality 1-100
}

// DevelopInput is one source photo to frame.
type DevelopInput struct {
	Name    string // Photo name without extension, used for debug output
	Data    []byte // Encoded source photo
	Options DevelopOptions
}

// DevelopResult is the framed photo.
type DevelopResult struct {
	Data     []byte // Encoded framed photo
	Format   ports.ImageFormat
	Width    int
	Height   int
	Painter  string
	Metadata film.Metadata
}
