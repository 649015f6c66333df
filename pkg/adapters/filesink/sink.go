// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/instantfilm/pkg/canvas"
	"github.com/user/instantfilm/pkg/ports"
)

// PreviewLongSide is the long side of saved previews in pixels.
const PreviewLongSide = 1024

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.ImageCodec
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// SaveMetadataJSON saves the metadata record of a photo to metadata/<name>.json.
func (s *Sink) SaveMetadataJSON(name string, data []byte) error {
	dir := filepath.Join(s.baseDir, "metadata")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(dir, name+".json"), data)
}

// SavePreview saves a downscaled PNG of a painted photo to preview/<name>.png.
func (s *Sink) SavePreview(name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "preview")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.codec.Encode(downscale(img), ports.EncodeOptions{Format: ports.FormatPNG})
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, name+".png"), data)
}

// downscale fits img into PreviewLongSide, keeping smaller images as they are.
func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= PreviewLongSide && h <= PreviewLongSide {
		return img
	}
	if w >= h {
		return canvas.Resize(img, PreviewLongSide, max(h*PreviewLongSide/w, 1))
	}
	return canvas.Resize(img, max(w*PreviewLongSide/h, 1), PreviewLongSide)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
