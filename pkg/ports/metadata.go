package ports

import "github.com/user/instantfilm/pkg/film"

// MetadataExtractor reads camera metadata embedded in an encoded photo.
type MetadataExtractor interface {
	// Extract returns the metadata record of the photo in data.
	// It fails when the data holds no parseable metadata container.
	Extract(data []byte) (film.Metadata, error)
}
