package mocks

import (
	"image"
	"sync"

	"github.com/user/trailclean/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	enabled bool

	mu sync.Mutex

	// Recorded calls for verification
	PreviewCount  int
	PatchedFrames []int
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveGeometryPreview(img image.Image, patchRect, mirrorRect image.Rectangle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PreviewCount++
	return nil
}

func (m *DebugSink) SavePatchedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PatchedFrames = append(m.PatchedFrames, index)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
