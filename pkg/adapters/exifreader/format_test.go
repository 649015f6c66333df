package exifreader

import (
	"testing"

	"github.com/user/instantfilm/pkg/film"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name     string
		format   func(string) string
		input    string
		expected string
	}{
		{"aperture rational", formatAperture, "28/10", "f/2.8"},
		{"aperture whole", formatAperture, "8/1", "f/8"},
		{"aperture decimal", formatAperture, "1.4", "f/1.4"},
		{"aperture zero denominator", formatAperture, "1/0", ""},
		{"aperture empty", formatAperture, "", ""},
		{"focal length", formatFocalLength, "35/1", "35 mm"},
		{"focal length fractional", formatFocalLength, "235/10", "23.5 mm"},
		{"focal length garbage", formatFocalLength, "abc", ""},
		{"exposure fraction", formatExposureTime, "1/125", "1/125 s"},
		{"exposure unreduced", formatExposureTime, "10/1250", "1/125 s"},
		{"exposure long", formatExposureTime, "2/1", "2 s"},
		{"exposure long fractional", formatExposureTime, "5/2", "2.5 s"},
		{"exposure zero", formatExposureTime, "0/1", ""},
		{"datetime", formatDateTime, "2024:01:02 15:04:05", "2024-01-02 15:04:05"},
		{"datetime with nul", formatDateTime, "2024:01:02 15:04:05\x00", "2024-01-02 15:04:05"},
		{"datetime other layout", formatDateTime, "yesterday", "yesterday"},
		{"datetime empty", formatDateTime, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFromTags(t *testing.T) {
	md := fromTags(map[string]string{
		"Make":             "FUJIFILM\x00",
		"Model":            "X100V ",
		"LensModel":        "",
		"Artist":           "jane",
		"FNumber":          "2/1",
		"FocalLength":      "23/1",
		"ExposureTime":     "1/500",
		"ISOSpeedRatings":  "160",
		"DateTimeOriginal": "2023:07:14 09:30:00",
		"Software":         "ignored",
	})

	expected := film.Metadata{
		Artist:       "jane",
		CameraMaker:  "FUJIFILM",
		CameraModel:  "X100V",
		Aperture:     "f/2",
		FocalLength:  "23 mm",
		ExposureTime: "1/500 s",
		ISO:          "160",
		DateTime:     "2023-07-14 09:30:00",
	}
	if md != expected {
		t.Errorf("expected %+v, got %+v", expected, md)
	}
	if got := film.ParameterLine(md); got != "23mm f/2 1/500s ISO160" {
		t.Errorf("unexpected parameter line %q", got)
	}
}

func TestFromTags_PhotographicSensitivity(t *testing.T) {
	md := fromTags(map[string]string{"PhotographicSensitivity": "3200"})
	if md.ISO != "3200" {
		t.Errorf("expected 3200, got %q", md.ISO)
	}
}
