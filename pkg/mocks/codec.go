package mocks

import (
	"fmt"
	"image"
	"sync"

	"github.com/user/trailclean/pkg/ports"
)

// FrameCodec is a mock implementation of ports.FrameCodec holding frames
// in memory, keyed by path.
type FrameCodec struct {
	mu     sync.RWMutex
	frames map[string]image.Image

	LoadFunc func(path string) (image.Image, error)
	SaveFunc func(img image.Image, path string) error
}

// NewFrameCodec creates a new mock FrameCodec.
func NewFrameCodec() *FrameCodec {
	return &FrameCodec{
		frames: make(map[string]image.Image),
	}
}

// Put seeds a frame at a path.
func (m *FrameCodec) Put(path string, img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames[path] = img
}

// Get returns the frame stored at a path (for test verification).
func (m *FrameCodec) Get(path string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.frames[path]
	return img, ok
}

func (m *FrameCodec) Load(path string) (image.Image, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if img, ok := m.frames[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("frame not found: %s", path)
}

func (m *FrameCodec) Save(img image.Image, path string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(img, path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames[path] = img
	return nil
}

var _ ports.FrameCodec = (*FrameCodec)(nil)
