// Package summarizer provides summary generation for batch develop runs.
package summarizer

import "time"

// Summary contains all data collected during a batch run.
type Summary struct {
	GeneratedAt time.Time   `json:"generatedAt"`
	Settings    Settings    `json:"settings"`
	Photos      []PhotoInfo `json:"photos"` // input order
	Totals      Totals      `json:"totals"` // derived from Photos
}

// Settings contains the run configuration.
type Settings struct {
	InputDir  string `json:"inputDir"`
	OutputDir string `json:"outputDir"`
	Painter   string `json:"painter"`
	Position  string `json:"position,omitempty"` // empty for the painter default
	PadAround bool   `json:"padAround"`
	Format    string `json:"format"`
	Quality   int    `json:"quality,omitempty"`
	Workers   int    `json:"workers"`
}

// PhotoInfo describes the outcome of one photo.
type PhotoInfo struct {
	Source     string `json:"source"`
	Output     string `json:"output,omitempty"`
	Camera     string `json:"camera,omitempty"` // camera model
	Lens       string `json:"lens,omitempty"`
	Parameters string `json:"parameters,omitempty"` // focal length, aperture, exposure and ISO
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	FileSize   int64  `json:"fileSize,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error,omitempty"` // empty on success
}

// Failed reports whether the photo could not be developed.
func (p PhotoInfo) Failed() bool {
	return p.Error != ""
}

// Totals summarizes all photos of a run.
type Totals struct {
	Photos     int   `json:"photos"`
	Succeeded  int   `json:"succeeded"`
	Failed     int   `json:"failed"`
	TotalBytes int64 `json:"totalBytes"`
	DurationMs int64 `json:"durationMs"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddPhoto appends a photo result.
func (b *Builder) AddPhoto(photo PhotoInfo) *Builder {
	b.summary.Photos = append(b.summary.Photos, photo)
	return b
}

// WithDuration sets the wall-clock duration of the run.
func (b *Builder) WithDuration(ms int64) *Builder {
	b.summary.Totals.DurationMs = ms
	return b
}

// Build computes the totals and returns the constructed Summary.
func (b *Builder) Build() *Summary {
	t := &b.summary.Totals
	t.Photos = len(b.summary.Photos)
	t.Succeeded, t.Failed, t.TotalBytes = 0, 0, 0
	for _, p := range b.summary.Photos {
		if p.Failed() {
			t.Failed++
			continue
		}
		t.Succeeded++
		t.TotalBytes += p.FileSize
	}
	return b.summary
}
