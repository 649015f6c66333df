// Package logo keeps brand logos in memory keyed by camera maker.
package logo

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/user/instantfilm/pkg/ports"
)

// Cache maps lower-cased maker keys to logo images.
// It is read-only after construction and safe for concurrent use.
// A nil *Cache is valid and never matches.
type Cache struct {
	logos map[string]image.Image
	// keys sorted longest first, then alphabetically, for deterministic lookup
	keys []string
}

// New builds a cache from key/image pairs. Keys are lower-cased and empty
// keys are dropped.
func New(logos map[string]image.Image) *Cache {
	c := &Cache{logos: make(map[string]image.Image, len(logos))}
	for k, img := range logos {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || img == nil {
			continue
		}
		c.logos[k] = img
	}
	c.keys = make([]string, 0, len(c.logos))
	for k := range c.logos {
		c.keys = append(c.keys, k)
	}
	sort.Slice(c.keys, func(i, j int) bool {
		if len(c.keys[i]) != len(c.keys[j]) {
			return len(c.keys[i]) > len(c.keys[j])
		}
		return c.keys[i] < c.keys[j]
	})
	return c
}

// Load decodes every regular file directly inside dir and keys it by its
// lower-cased file stem, so "canon.png" serves maker "Canon Inc.".
// Any unreadable or undecodable file fails the whole load.
func Load(fs ports.FileSystem, dir string) (*Cache, error) {
	paths, err := fs.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list logo directory: %w", err)
	}

	logos := make(map[string]image.Image, len(paths))
	for _, path := range paths {
		base := filepath.Base(path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if stem == "" {
			continue
		}
		data, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read logo %s: %w", base, err)
		}
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("decode logo %s: %w", base, err)
		}
		logos[stem] = img
	}
	return New(logos), nil
}

// Get returns the logo whose key occurs in the lower-cased maker string.
// When several keys match, the longest one wins. It returns nil when maker
// is empty or nothing matches.
func (c *Cache) Get(maker string) image.Image {
	if c == nil || maker == "" {
		return nil
	}
	maker = strings.ToLower(maker)
	for _, k := range c.keys {
		if strings.Contains(maker, k) {
			return c.logos[k]
		}
	}
	return nil
}

// Len returns the number of cached logos.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Names returns the cached keys in lookup order.
func (c *Cache) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}
