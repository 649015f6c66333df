// Package exifreader extracts camera metadata from EXIF blocks embedded in
// JPEG, PNG, TIFF and HEIF photos.
package exifreader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dsoprea/go-exif/v3"
	heicexif "github.com/dsoprea/go-heic-exif-extractor"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	pngstructure "github.com/dsoprea/go-png-image-structure"
	tiffstructure "github.com/dsoprea/go-tiff-image-structure"
	riimage "github.com/dsoprea/go-utility/image"

	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/ports"
)

// ErrNoMetadata is returned when the photo carries no EXIF block.
var ErrNoMetadata = errors.New("no EXIF metadata found")

type exifParser interface {
	Parse(rs io.ReadSeeker, size int) (ec riimage.MediaContext, err error)
}

// Reader implements ports.MetadataExtractor.
type Reader struct{}

// New creates a Reader.
func New() *Reader {
	return &Reader{}
}

// Extract implements ports.MetadataExtractor.
func (r *Reader) Extract(data []byte) (md film.Metadata, err error) {
	// the dsoprea parsers panic on some malformed input
	defer func() {
		if state := recover(); state != nil {
			md, err = film.Metadata{}, fmt.Errorf("parse EXIF: %v", state)
		}
	}()

	raw, err := findExif(data)
	if err != nil {
		return film.Metadata{}, err
	}

	entries, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return film.Metadata{}, fmt.Errorf("parse EXIF: %w", err)
	}

	// IFD0 and the Exif IFD come before the thumbnail IFD; keep the first value.
	tags := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.TagName == "" {
			continue
		}
		if _, seen := tags[entry.TagName]; seen {
			continue
		}
		tags[entry.TagName] = entry.FormattedFirst
	}
	return fromTags(tags), nil
}

// findExif returns the raw EXIF block (starting at its TIFF header).
func findExif(data []byte) ([]byte, error) {
	if parser := parserFor(data); parser != nil {
		if ec, err := parser.Parse(bytes.NewReader(data), len(data)); err == nil {
			if _, raw, err := ec.Exif(); err == nil && len(raw) > 0 {
				return raw, nil
			}
		}
	}

	raw, err := exif.SearchAndExtractExif(data)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return nil, ErrNoMetadata
		}
		return nil, fmt.Errorf("search EXIF: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNoMetadata
	}
	return raw, nil
}

// parserFor picks a container parser from the leading magic bytes.
func parserFor(data []byte) exifParser {
	switch {
	case bytes.HasPrefix(data, []byte{0xff, 0xd8, 0xff}):
		return jpegstructure.NewJpegMediaParser()
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return pngstructure.NewPngMediaParser()
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return tiffstructure.NewTiffMediaParser()
	case len(data) >= 12 && string(data[4:8]) == "ftyp" && isHeifBrand(string(data[8:12])):
		return heicexif.NewHeicExifMediaParser()
	default:
		return nil
	}
}

func isHeifBrand(brand string) bool {
	switch brand {
	case "heic", "heix", "hevc", "hevx", "mif1", "msf1", "avif":
		return true
	default:
		return false
	}
}

// Ensure Reader implements ports.MetadataExtractor
var _ ports.MetadataExtractor = (*Reader)(nil)
