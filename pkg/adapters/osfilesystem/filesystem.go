// Package osfilesystem implements ports.FileSystem on the local disk.
package osfilesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/instantfilm/pkg/ports"
)

const (
	defaultFileMode fs.FileMode = 0644
	defaultDirMode  fs.FileMode = 0755
)

// FileSystem reads and writes the local disk. Writes go through a temporary
// file in the target directory and are renamed into place, so a developed
// photo is either complete or absent.
type FileSystem struct {
	fileMode fs.FileMode
	dirMode  fs.FileMode
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithFileMode sets the permissions of written files.
func WithFileMode(mode fs.FileMode) Option {
	return func(f *FileSystem) { f.fileMode = mode }
}

// WithDirMode sets the permissions of created directories.
func WithDirMode(mode fs.FileMode) Option {
	return func(f *FileSystem) { f.dirMode = mode }
}

func New(opts ...Option) *FileSystem {
	f := &FileSystem{fileMode: defaultFileMode, dirMode: defaultDirMode}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *FileSystem) WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, f.dirMode); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Chmod(f.fileMode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (f *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, f.dirMode)
}

// ListFiles follows symlinks; directories and special files are skipped.
func (f *FileSystem) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
