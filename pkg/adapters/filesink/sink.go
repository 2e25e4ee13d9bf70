// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/user/trailclean/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.FrameCodec
}

// New creates a new file sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, codec ports.FrameCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveGeometryPreview saves a frame with the watermark rectangle outlined
// in red and the mirror source rectangle in blue, for eyeballing geometry
// options against real footage.
func (s *Sink) SaveGeometryPreview(img image.Image, patchRect, mirrorRect image.Rectangle) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}

	dc := gg.NewContextForImage(img)
	dc.SetLineWidth(2)

	dc.SetRGB(1, 0, 0)
	strokeRect(dc, patchRect)

	if !mirrorRect.Empty() {
		dc.SetRGB(0, 0.4, 1)
		strokeRect(dc, mirrorRect)
	}

	path := filepath.Join(s.baseDir, "geometry.png")
	return s.codec.Save(dc.Image(), path)
}

// SavePatchedFrame saves the patched version of a frame.
func (s *Sink) SavePatchedFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("patched_%06d.png", index))
	return s.codec.Save(img, path)
}

func strokeRect(dc *gg.Context, r image.Rectangle) {
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Stroke()
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
