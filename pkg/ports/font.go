package ports

import "github.com/golang/freetype/truetype"

// FontLoader loads TrueType fonts used for metadata text.
type FontLoader interface {
	// Load parses the font at path. An empty path selects the built-in font.
	Load(path string) (*truetype.Font, error)
}
