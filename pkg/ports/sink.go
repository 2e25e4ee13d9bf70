package ports

import "image"

// DebugSink receives debug artifacts during a run. Implementations are
// best-effort; a failed save never aborts the pipeline.
type DebugSink interface {
	// Enabled returns true if the sink accepts output. Callers should
	// check this before preparing expensive debug data.
	Enabled() bool

	// SaveGeometryPreview saves a frame with the watermark and
	// mirror-source rectangles outlined.
	SaveGeometryPreview(img image.Image, patchRect, mirrorRect image.Rectangle) error

	// SavePatchedFrame saves the patched version of a frame.
	SavePatchedFrame(index int, img image.Image) error
}
