package mocks

import (
	"sync"

	"github.com/user/instantfilm/pkg/film"
	"github.com/user/instantfilm/pkg/ports"
)

// MetadataExtractor is a mock implementation of ports.MetadataExtractor.
// By default it returns Metadata for every call.
type MetadataExtractor struct {
	mu    sync.Mutex
	calls int

	Metadata    film.Metadata
	ExtractFunc func(data []byte) (film.Metadata, error)
}

func (m *MetadataExtractor) Extract(data []byte) (film.Metadata, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.ExtractFunc != nil {
		return m.ExtractFunc(data)
	}
	return m.Metadata, nil
}

// Calls returns how many times Extract was called.
func (m *MetadataExtractor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ ports.MetadataExtractor = (*MetadataExtractor)(nil)
