// Package film holds the domain model shared by every painter: the metadata
// record read from a photo, anchor positions, colors and the text lines
// projected from metadata.
package film

import (
	"strings"
	"unicode"
)

// Metadata is the normalized camera metadata of one photo.
// An empty field means the value was not present in the source.
type Metadata struct {
	Artist       string `json:"artist,omitempty"`
	LensModel    string `json:"lensModel,omitempty"`
	CameraMaker  string `json:"cameraMaker,omitempty"`
	CameraModel  string `json:"cameraModel,omitempty"`
	Aperture     string `json:"aperture,omitempty"`
	FocalLength  string `json:"focalLength,omitempty"`
	ExposureTime string `json:"exposureTime,omitempty"`
	ISO          string `json:"iso,omitempty"`
	DateTime     string `json:"dateTime,omitempty"`
}

// CleanMetadata trims every field and strips control characters.
// Fields that end up empty are treated as absent.
func CleanMetadata(m Metadata) Metadata {
	return Metadata{
		Artist:       cleanField(m.Artist),
		LensModel:    cleanField(m.LensModel),
		CameraMaker:  cleanField(m.CameraMaker),
		CameraModel:  cleanField(m.CameraModel),
		Aperture:     cleanField(m.Aperture),
		FocalLength:  cleanField(m.FocalLength),
		ExposureTime: cleanField(m.ExposureTime),
		ISO:          cleanField(m.ISO),
		DateTime:     cleanField(m.DateTime),
	}
}

// IsEmpty reports whether no field is present.
func (m Metadata) IsEmpty() bool {
	return m == Metadata{}
}

func cleanField(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
