package ports

import (
	"context"
	"fmt"
)

// FrameRate is a rational frames-per-second value as containers report it
// (e.g. 30000/1001 for NTSC). It is read once from the source and reused
// unchanged for the output.
type FrameRate struct {
	Num int
	Den int
}

// Float returns the frame rate as a floating point value.
func (r FrameRate) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// String returns the frame rate in ffmpeg's rational notation.
func (r FrameRate) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// IsZero reports whether the frame rate is unset or degenerate.
func (r FrameRate) IsZero() bool {
	return r.Num == 0 || r.Den == 0
}

// VideoInfo holds the source metadata the pipeline needs to reassemble
// the output container.
type VideoInfo struct {
	FrameRate FrameRate
	HasAudio  bool
}

// VideoProber reads container metadata from a video file.
type VideoProber interface {
	// Probe returns the frame rate and audio stream presence of a video.
	Probe(ctx context.Context, path string) (VideoInfo, error)
}

// AssembleRequest describes one reassembly of numbered frame images into
// a video container.
type AssembleRequest struct {
	// FramePattern is a printf-style path pattern for the numbered frame
	// files, e.g. "frames/frame_%06d.png".
	FramePattern string

	// FrameRate is the target frame rate, normally the source rate.
	FrameRate FrameRate

	// AudioSource is the path of a video whose audio track is muxed into
	// the output unchanged. Empty means no audio.
	AudioSource string

	// OutputPath is the destination video file.
	OutputPath string
}

// VideoProcessor abstracts the external decode/encode collaborator
// (ffmpeg in production).
type VideoProcessor interface {
	VideoProber

	// Verify checks that the external tools are present and executable.
	// It is called before any frame work starts.
	Verify() error

	// ExtractFrames decodes a video into numbered image files in dir,
	// named after the printf-style pattern.
	ExtractFrames(ctx context.Context, path, dir, pattern string) error

	// AssembleVideo encodes a numbered frame sequence into a video file.
	AssembleVideo(ctx context.Context, req AssembleRequest) error
}
