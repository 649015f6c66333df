package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/instantfilm/pkg/mocks"
	"github.com/user/instantfilm/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_SaveMetadataJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.ImageCodec{})

	data := []byte(`{"cameraModel": "X100V"}`)
	if err := sink.SaveMetadataJSON("DSCF0001", data); err != nil {
		t.Fatalf("SaveMetadataJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "metadata", "DSCF0001.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SavePreview(t *testing.T) {
	fs := mocks.NewFileSystem()
	var encodedSize image.Point
	codec := &mocks.ImageCodec{
		EncodeFunc: func(img image.Image, opts ports.EncodeOptions) ([]byte, error) {
			if opts.Format != ports.FormatPNG {
				t.Errorf("expected PNG preview, got %s", opts.Format)
			}
			encodedSize = img.Bounds().Size()
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil
		},
	}
	sink := New(testBaseDir, fs, codec)

	img := image.NewRGBA(image.Rect(0, 0, 4096, 2048))
	if err := sink.SavePreview("DSCF0001", img); err != nil {
		t.Fatalf("SavePreview failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "preview", "DSCF0001.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if encodedSize != image.Pt(1024, 512) {
		t.Errorf("expected preview 1024x512, got %v", encodedSize)
	}
}

func TestSink_SavePreviewKeepsSmallImages(t *testing.T) {
	var encodedSize image.Point
	codec := &mocks.ImageCodec{
		EncodeFunc: func(img image.Image, opts ports.EncodeOptions) ([]byte, error) {
			encodedSize = img.Bounds().Size()
			return []byte{0x89}, nil
		},
	}
	sink := New(testBaseDir, mocks.NewFileSystem(), codec)

	if err := sink.SavePreview("small", image.NewRGBA(image.Rect(0, 0, 300, 600))); err != nil {
		t.Fatalf("SavePreview failed: %v", err)
	}
	if encodedSize != image.Pt(300, 600) {
		t.Errorf("expected 300x600, got %v", encodedSize)
	}
}

func TestSink_SavePreviewPortrait(t *testing.T) {
	var encodedSize image.Point
	codec := &mocks.ImageCodec{
		EncodeFunc: func(img image.Image, opts ports.EncodeOptions) ([]byte, error) {
			encodedSize = img.Bounds().Size()
			return []byte{0x89}, nil
		},
	}
	sink := New(testBaseDir, mocks.NewFileSystem(), codec)

	if err := sink.SavePreview("tall", image.NewRGBA(image.Rect(0, 0, 1500, 3000))); err != nil {
		t.Fatalf("SavePreview failed: %v", err)
	}
	if encodedSize != image.Pt(512, 1024) {
		t.Errorf("expected 512x1024, got %v", encodedSize)
	}
}

func TestSink_SavePreviewEncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := &mocks.ImageCodec{
		EncodeFunc: func(img image.Image, opts ports.EncodeOptions) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	sink := New(testBaseDir, fs, codec)

	if err := sink.SavePreview("broken", image.NewRGBA(image.Rect(0, 0, 10, 10))); err == nil {
		t.Error("expected error when encoding fails")
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "preview", "broken.png")); ok {
		t.Error("expected no file when encoding fails")
	}
}

func TestSink_MultiplePhotos(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.ImageCodec{})

	names := []string{"a", "b", "c"}
	for _, name := range names {
		if err := sink.SaveMetadataJSON(name, []byte("{}")); err != nil {
			t.Fatalf("SaveMetadataJSON %s failed: %v", name, err)
		}
	}

	files := fs.Files()
	if len(files) != len(names) {
		t.Errorf("expected %d files, got %d", len(names), len(files))
	}
}
