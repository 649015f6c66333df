package exifreader

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/user/instantfilm/pkg/film"
)

const (
	exifTimeLayout  = "2006:01:02 15:04:05"
	printTimeLayout = "2006-01-02 15:04:05"
)

// fromTags maps flattened EXIF tag values onto a metadata record.
func fromTags(tags map[string]string) film.Metadata {
	iso := tags["ISOSpeedRatings"]
	if iso == "" {
		iso = tags["PhotographicSensitivity"]
	}
	return film.CleanMetadata(film.Metadata{
		Artist:       tags["Artist"],
		LensModel:    tags["LensModel"],
		CameraMaker:  tags["Make"],
		CameraModel:  tags["Model"],
		Aperture:     formatAperture(tags["FNumber"]),
		FocalLength:  formatFocalLength(tags["FocalLength"]),
		ExposureTime: formatExposureTime(tags["ExposureTime"]),
		ISO:          iso,
		DateTime:     formatDateTime(tags["DateTimeOriginal"]),
	})
}

// formatAperture renders "28/10" as "f/2.8".
func formatAperture(v string) string {
	f, ok := parseRational(v)
	if !ok || f <= 0 {
		return ""
	}
	return "f/" + formatDecimal(f)
}

// formatFocalLength renders "35/1" as "35 mm".
func formatFocalLength(v string) string {
	f, ok := parseRational(v)
	if !ok || f <= 0 {
		return ""
	}
	return formatDecimal(f) + " mm"
}

// formatExposureTime renders fractions of a second as "1/125 s" and longer
// exposures as "2 s" or "2.5 s".
func formatExposureTime(v string) string {
	f, ok := parseRational(v)
	if !ok || f <= 0 {
		return ""
	}
	if f >= 1 {
		return formatDecimal(f) + " s"
	}
	return "1/" + strconv.FormatFloat(math.Round(1/f), 'f', -1, 64) + " s"
}

// formatDateTime converts the EXIF "2006:01:02 15:04:05" layout. Values in
// any other layout are kept as they are.
func formatDateTime(v string) string {
	v = strings.TrimSpace(strings.ReplaceAll(v, "\x00", ""))
	if v == "" {
		return ""
	}
	t, err := time.Parse(exifTimeLayout, v)
	if err != nil {
		return v
	}
	return t.Format(printTimeLayout)
}

// parseRational accepts "num/den" or a plain decimal.
func parseRational(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	num, den, found := strings.Cut(s, "/")
	if !found {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
	d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// formatDecimal prints f with at most one decimal and no trailing zero.
func formatDecimal(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}
