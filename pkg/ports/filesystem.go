package ports

// FileSystem is the file access used by batch runs, resource loading and
// debug output. Paths are OS paths.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces path with data, creating parent directories.
	WriteFile(path string, data []byte) error

	MkdirAll(path string) error

	// ListFiles returns the regular files directly inside dir, sorted by
	// name. Subdirectories are not descended into.
	ListFiles(dir string) ([]string, error)
}
