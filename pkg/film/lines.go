package film

import "strings"

// CameraLine returns the camera model, or "" when absent.
func CameraLine(m Metadata) string {
	return m.CameraModel
}

// LensLine returns the lens model, or "" when absent.
func LensLine(m Metadata) string {
	return m.LensModel
}

// ParameterLine joins focal length, aperture, exposure time and ISO with
// single spaces. Spaces inside each value are removed, ISO gets its "ISO"
// prefix and absent values are skipped.
func ParameterLine(m Metadata) string {
	iso := ""
	if m.ISO != "" {
		iso = "ISO" + m.ISO
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{m.FocalLength, m.Aperture, m.ExposureTime, iso} {
		p = strings.ReplaceAll(p, " ", "")
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// TimestampLine returns the capture date and time, or "" when absent.
func TimestampLine(m Metadata) string {
	return m.DateTime
}

// AttributionLine returns "by @<artist>", or "" when no artist is recorded.
func AttributionLine(m Metadata) string {
	if m.Artist == "" {
		return ""
	}
	return "by @" + m.Artist
}

// NonEmpty returns the given lines without the empty ones, preserving order.
func NonEmpty(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
