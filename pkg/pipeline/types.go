package pipeline

import (
	"fmt"

	"github.com/user/trailclean/pkg/patch"
	"github.com/user/trailclean/pkg/ports"
)

// FramePattern is the printf-style file name for extracted frames.
// Zero padding keeps lexicographic order equal to index order, which is
// what the assemble step relies on.
const FramePattern = "frame_%06d.png"

// FrameFileName returns the file name for a frame index.
func FrameFileName(index int) string {
	return fmt.Sprintf(FramePattern, index)
}

// ExtractInput is the input for the extract stage.
type ExtractInput struct {
	InputPath string
	TempDir   string
}

// ExtractResult is the output of the extract stage.
type ExtractResult struct {
	Info ports.VideoInfo

	// FrameFiles are the extracted frame file names within TempDir,
	// sorted in index order.
	FrameFiles []string

	TempDir string
}

// PatchInput is the input for the parallel patch stage.
type PatchInput struct {
	TempDir    string
	FrameFiles []string
	Geometry   patch.Geometry
}

// PatchResult is the output of the patch stage.
type PatchResult struct {
	Patched int
}

// AssembleInput is the input for the assemble stage.
type AssembleInput struct {
	TempDir    string
	Info       ports.VideoInfo
	InputPath  string // audio source when the probe found an audio stream
	OutputPath string
}

// AssembleResult is the output of the assemble stage.
type AssembleResult struct {
	OutputPath string
	FileSize   int64
}
