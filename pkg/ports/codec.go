package ports

import (
	"image"
	"strings"
)

// ImageFormat represents an output image format.
type ImageFormat int

const (
	// FormatJPEG is JPEG format.
	FormatJPEG ImageFormat = iota
	// FormatPNG is PNG format.
	FormatPNG
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	default:
		return "jpeg"
	}
}

// Extension returns the file extension used for the format, with the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	default:
		return ".jpg"
	}
}

// ParseImageFormat parses "jpeg", "jpg" or "png". Anything else is JPEG.
func ParseImageFormat(s string) ImageFormat {
	if strings.EqualFold(strings.TrimSpace(s), "png") {
		return FormatPNG
	}
	return FormatJPEG
}

// EncodeOptions controls how a painted photo is encoded.
type EncodeOptions struct {
	Format  ImageFormat
	Quality int // JPEG quality 1-100

	// ColorProfile holds ICC profile segments to embed unchanged.
	// Only JPEG output carries them.
	ColorProfile [][]byte
}

// ImageCodec decodes source photos and encodes painted ones.
type ImageCodec interface {
	// Decode decodes any supported still image into a bitmap.
	Decode(data []byte) (image.Image, error)

	// Encode encodes img according to opts.
	Encode(img image.Image, opts EncodeOptions) ([]byte, error)

	// ColorProfile returns the embedded ICC profile segments of data, if any.
	ColorProfile(data []byte) [][]byte
}
