package ffmpegcli

import (
	"context"
	"fmt"

	"github.com/user/trailclean/pkg/ports"
)

// AssembleVideo encodes a numbered frame sequence into a video container
// at the requested frame rate, muxing the audio track of AudioSource
// unchanged when one is given.
func (t *Tool) AssembleVideo(ctx context.Context, req ports.AssembleRequest) error {
	if err := t.ensureVerified(); err != nil {
		return err
	}
	if err := t.runFFmpeg(ctx, buildAssembleArgs(req)); err != nil {
		return fmt.Errorf("assemble %s: %w", req.OutputPath, err)
	}
	return nil
}

func buildAssembleArgs(req ports.AssembleRequest) []string {
	args := []string{
		"-loglevel", "error",
		"-y",
		"-framerate", req.FrameRate.String(),
		"-i", req.FramePattern,
	}

	if req.AudioSource != "" {
		args = append(args,
			"-i", req.AudioSource,
			"-map", "0:v:0",
			"-map", "1:a:0",
			"-c:a", "copy",
			"-shortest",
		)
	}

	args = append(args,
		"-c:v", "libx264",
		"-crf", "18",
		"-preset", "veryslow",
		"-pix_fmt", "yuv420p",
		req.OutputPath,
	)
	return args
}
