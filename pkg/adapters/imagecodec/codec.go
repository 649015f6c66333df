// Package imagecodec decodes source photos and encodes painted ones,
// carrying JPEG ICC profiles across unchanged.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	_ "golang.org/x/image/webp"

	"github.com/user/instantfilm/pkg/ports"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

const markerAPP2 = 0xe2

// iccSignature prefixes every ICC_PROFILE APP2 segment payload.
var iccSignature = []byte("ICC_PROFILE\x00")

// Codec implements ports.ImageCodec.
type Codec struct {
	autoOrient bool
}

// New creates a Codec. With autoOrient, decoded photos are rotated and
// flipped according to their EXIF orientation tag.
func New(autoOrient bool) *Codec {
	return &Codec{autoOrient: autoOrient}
}

// Decode decodes JPEG, PNG, GIF, BMP, TIFF or WebP data.
func (c *Codec) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Encode encodes img as JPEG or PNG.
func (c *Codec) Encode(img image.Image, opts ports.EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer

	switch opts.Format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
		return buf.Bytes(), nil
	case ports.FormatJPEG:
		quality := opts.Quality
		if quality <= 0 || quality > 100 {
			quality = DefaultQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
		if len(opts.ColorProfile) == 0 {
			return buf.Bytes(), nil
		}
		return embedColorProfile(buf.Bytes(), opts.ColorProfile)
	default:
		return nil, fmt.Errorf("unsupported format: %d", opts.Format)
	}
}

// ColorProfile returns the ICC_PROFILE APP2 payloads of a JPEG in file
// order. Other formats and unparseable data yield nil.
func (c *Codec) ColorProfile(data []byte) [][]byte {
	if len(data) < 3 || data[0] != 0xff || data[1] != 0xd8 {
		return nil
	}
	ec, err := jpegstructure.NewJpegMediaParser().ParseBytes(data)
	if err != nil {
		return nil
	}
	sl, ok := ec.(*jpegstructure.SegmentList)
	if !ok {
		return nil
	}

	var segments [][]byte
	for _, s := range sl.Segments() {
		if s.MarkerId == markerAPP2 && bytes.HasPrefix(s.Data, iccSignature) {
			segments = append(segments, append([]byte(nil), s.Data...))
		}
	}
	return segments
}

// embedColorProfile inserts APP2 segments right after the SOI marker.
func embedColorProfile(jpg []byte, segments [][]byte) ([]byte, error) {
	if len(jpg) < 2 || jpg[0] != 0xff || jpg[1] != 0xd8 {
		return nil, errors.New("embed color profile: missing SOI marker")
	}
	var out bytes.Buffer
	out.Grow(len(jpg))
	out.Write(jpg[:2])
	for _, seg := range segments {
		length := len(seg) + 2
		if length > 0xffff {
			return nil, fmt.Errorf("embed color profile: segment of %d bytes is too large", len(seg))
		}
		out.Write([]byte{0xff, markerAPP2, byte(length >> 8), byte(length)})
		out.Write(seg)
	}
	out.Write(jpg[2:])
	return out.Bytes(), nil
}

// Ensure Codec implements ports.ImageCodec
var _ ports.ImageCodec = (*Codec)(nil)
