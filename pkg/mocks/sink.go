package mocks

import (
	"image"
	"sync"

	"github.com/user/instantfilm/pkg/ports"
)

// DebugSink records debug output in memory.
type DebugSink struct {
	mu       sync.Mutex
	metadata map[string][]byte
	previews map[string]image.Image

	// Err, when set, is returned by every save.
	Err error
}

func NewDebugSink() *DebugSink {
	return &DebugSink{
		metadata: make(map[string][]byte),
		previews: make(map[string]image.Image),
	}
}

func (m *DebugSink) SaveMetadataJSON(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.metadata[name] = data
	return nil
}

func (m *DebugSink) SavePreview(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.previews[name] = img
	return nil
}

// Metadata returns the metadata JSON saved for name.
func (m *DebugSink) Metadata(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.metadata[name]
	return data, ok
}

// Preview returns the preview saved for name.
func (m *DebugSink) Preview(name string) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.previews[name]
	return img, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)
