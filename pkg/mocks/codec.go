package mocks

import (
	"image"
	"sync"

	"github.com/user/instantfilm/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec.
type ImageCodec struct {
	mu sync.Mutex

	DecodeFunc       func(data []byte) (image.Image, error)
	EncodeFunc       func(img image.Image, opts ports.EncodeOptions) ([]byte, error)
	ColorProfileFunc func(data []byte) [][]byte

	encoded []ports.EncodeOptions
}

func (m *ImageCodec) Decode(data []byte) (image.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 75)), nil
}

func (m *ImageCodec) Encode(img image.Image, opts ports.EncodeOptions) ([]byte, error) {
	m.mu.Lock()
	m.encoded = append(m.encoded, opts)
	m.mu.Unlock()
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, opts)
	}
	if opts.Format == ports.FormatPNG {
		return []byte{0x89, 0x50, 0x4E, 0x47}, nil
	}
	return []byte{0xFF, 0xD8, 0xFF}, nil
}

func (m *ImageCodec) ColorProfile(data []byte) [][]byte {
	if m.ColorProfileFunc != nil {
		return m.ColorProfileFunc(data)
	}
	return nil
}

// EncodeCalls returns the options of every Encode call (for test verification).
func (m *ImageCodec) EncodeCalls() []ports.EncodeOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.EncodeOptions(nil), m.encoded...)
}

var _ ports.ImageCodec = (*ImageCodec)(nil)
