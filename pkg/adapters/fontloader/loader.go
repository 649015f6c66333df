// Package fontloader loads TrueType fonts through the FileSystem port.
package fontloader

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/instantfilm/pkg/ports"
)

// Loader implements ports.FontLoader.
type Loader struct {
	fs ports.FileSystem
}

// New creates a Loader reading font files from fs.
func New(fs ports.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load parses the TrueType font at path. An empty path returns the
// built-in Go Regular font.
func (l *Loader) Load(path string) (*truetype.Font, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

// LoadOptional is Load for fonts the caller can live without. It returns
// nil for an empty path or on any failure, after logging a warning.
func (l *Loader) LoadOptional(path string, logger ports.Logger) *truetype.Font {
	if path == "" {
		return nil
	}
	f, err := l.Load(path)
	if err != nil {
		logger.Warn("Sub font unavailable, using main font: %s", err)
		return nil
	}
	return f
}

// Builtin returns the Go Regular font bundled with golang.org/x/image.
func Builtin() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse built-in font: %v", err))
	}
	return f
}

// Ensure Loader implements ports.FontLoader
var _ ports.FontLoader = (*Loader)(nil)
