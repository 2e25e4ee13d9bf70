package ports

import "image"

// FrameCodec abstracts frame image file I/O so the patch stage can be
// tested without touching the filesystem.
type FrameCodec interface {
	// Load reads and decodes a frame image file.
	Load(path string) (image.Image, error)

	// Save encodes and writes a frame image file, inferring the format
	// from the file extension.
	Save(img image.Image, path string) error
}
