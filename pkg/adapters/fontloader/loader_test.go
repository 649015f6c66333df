package fontloader

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"

	"github.com/user/instantfilm/pkg/adapters/logger"
	"github.com/user/instantfilm/pkg/mocks"
)

func TestLoader_Load(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("fonts/bold.ttf", gobold.TTF)

	f, err := New(fs).Load("fonts/bold.ttf")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f == nil {
		t.Fatal("expected font")
	}
}

func TestLoader_LoadEmptyPathUsesBuiltin(t *testing.T) {
	f, err := New(mocks.NewFileSystem()).Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f == nil {
		t.Fatal("expected built-in font")
	}
}

func TestLoader_LoadErrors(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("fonts/broken.ttf", []byte("not a font"))
	l := New(fs)

	if _, err := l.Load("fonts/missing.ttf"); err == nil {
		t.Error("expected error for missing font")
	}
	if _, err := l.Load("fonts/broken.ttf"); err == nil {
		t.Error("expected error for unparseable font")
	}
}

func TestLoader_LoadOptional(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("fonts/bold.ttf", gobold.TTF)
	l := New(fs)
	log := logger.NewDiscard()

	if f := l.LoadOptional("", log); f != nil {
		t.Error("expected nil for empty path")
	}
	if f := l.LoadOptional("fonts/missing.ttf", log); f != nil {
		t.Error("expected nil for missing font")
	}
	if f := l.LoadOptional("fonts/bold.ttf", log); f == nil {
		t.Error("expected font")
	}
}
