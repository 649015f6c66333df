package logo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/instantfilm/pkg/mocks"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestGet_SubstringMatch(t *testing.T) {
	canon := solid(4, 2, color.Black)
	c := New(map[string]image.Image{"canon": canon})

	tests := []struct {
		maker string
		found bool
	}{
		{"Canon", true},
		{"CANON", true},
		{"Canon Inc.", true},
		{"Nikon", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.maker, func(t *testing.T) {
			got := c.Get(tt.maker)
			if (got != nil) != tt.found {
				t.Errorf("expected found=%v, got %v", tt.found, got != nil)
			}
		})
	}
}

func TestGet_LongestKeyWins(t *testing.T) {
	short := solid(1, 1, color.Black)
	long := solid(2, 2, color.White)
	c := New(map[string]image.Image{"fuji": short, "fujifilm": long})

	for i := 0; i < 10; i++ {
		if got := c.Get("FUJIFILM Corporation"); got != long {
			t.Fatal("expected the longest matching key to win")
		}
	}
	if got := c.Get("Fuji Photo"); got != short {
		t.Error("expected shorter key when only it matches")
	}
}

func TestNilCache(t *testing.T) {
	var c *Cache
	if c.Get("Canon") != nil {
		t.Error("expected nil cache to never match")
	}
	if c.Len() != 0 {
		t.Errorf("expected 0, got %d", c.Len())
	}
}

func TestNew_DropsEmptyKeys(t *testing.T) {
	c := New(map[string]image.Image{" ": solid(1, 1, color.Black), "Sony": solid(1, 1, color.Black)})
	if c.Len() != 1 {
		t.Fatalf("expected 1 logo, got %d", c.Len())
	}
	if c.Names()[0] != "sony" {
		t.Errorf("expected lower-cased key sony, got %q", c.Names()[0])
	}
}

func TestLoad(t *testing.T) {
	fs := mocks.NewFileSystem()
	dir := filepath.Join("logos")
	fs.WriteFile(filepath.Join(dir, "Leica.png"), encodePNG(t, solid(10, 5, color.Black)))
	fs.WriteFile(filepath.Join(dir, "sony.png"), encodePNG(t, solid(6, 6, color.White)))

	c, err := Load(fs, dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 logos, got %d", c.Len())
	}
	img := c.Get("LEICA CAMERA AG")
	if img == nil {
		t.Fatal("expected leica logo")
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 5 {
		t.Errorf("expected 10x5, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoad_Formats(t *testing.T) {
	fs := mocks.NewFileSystem()
	dir := filepath.Join("logos")

	var jpg, gf bytes.Buffer
	if err := jpeg.Encode(&jpg, solid(16, 8, color.Black), nil); err != nil {
		t.Fatal(err)
	}
	if err := gif.Encode(&gf, solid(4, 4, color.White), nil); err != nil {
		t.Fatal(err)
	}
	fs.WriteFile(filepath.Join(dir, "fujifilm.jpg"), jpg.Bytes())
	fs.WriteFile(filepath.Join(dir, "ricoh.gif"), gf.Bytes())

	c, err := Load(fs, dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		maker string
		w, h  int
	}{
		{"FUJIFILM", 16, 8},
		{"RICOH IMAGING COMPANY, LTD.", 4, 4},
	}
	for _, tt := range tests {
		img := c.Get(tt.maker)
		if img == nil {
			t.Errorf("expected logo for %s", tt.maker)
			continue
		}
		if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
			t.Errorf("expected %dx%d for %s, got %dx%d", tt.w, tt.h, tt.maker, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAll("logos")

	c, err := Load(fs, "logos")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d", c.Len())
	}
}

func TestLoad_DecodeFailureAbortsLoad(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile(filepath.Join("logos", "canon.png"), encodePNG(t, solid(2, 2, color.Black)))
	fs.WriteFile(filepath.Join("logos", "broken.png"), []byte("not an image"))

	c, err := Load(fs, "logos")
	if err == nil {
		t.Fatal("expected error for undecodable logo")
	}
	if c != nil {
		t.Error("expected no partial cache")
	}
}

func TestLoad_ListFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return nil, errors.New("permission denied")
	}

	if _, err := Load(fs, "logos"); err == nil {
		t.Error("expected error when the directory cannot be listed")
	}
}
