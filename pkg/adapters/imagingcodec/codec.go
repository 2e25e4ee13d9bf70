// Package imagingcodec provides frame image file I/O backed by the
// disintegration/imaging library.
package imagingcodec

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/user/trailclean/pkg/ports"
)

// Codec implements ports.FrameCodec.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Load reads and decodes a frame image file.
func (c *Codec) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load frame %s: %w", path, err)
	}
	return img, nil
}

// Save encodes and writes a frame image file. The format follows the
// file extension (frames are always PNG in this pipeline).
func (c *Codec) Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save frame %s: %w", path, err)
	}
	return nil
}

// Ensure Codec implements ports.FrameCodec
var _ ports.FrameCodec = (*Codec)(nil)
