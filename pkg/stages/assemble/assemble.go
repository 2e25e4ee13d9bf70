// Package assemble implements the video reassembly stage.
package assemble

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
)

// Stage encodes the patched frame sequence back into a video container.
type Stage struct {
	video  ports.VideoProcessor
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(video ports.VideoProcessor, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		video:  video,
		fs:     fs,
		logger: logger.WithComponent("assemble"),
	}
}

// Execute encodes all frames at the source frame rate, muxing the source
// audio track when present.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	audio := ""
	if input.Info.HasAudio {
		audio = input.InputPath
		s.logger.Debug("Muxing audio track from %s", audio)
	}

	req := ports.AssembleRequest{
		FramePattern: filepath.Join(input.TempDir, pipeline.FramePattern),
		FrameRate:    input.Info.FrameRate,
		AudioSource:  audio,
		OutputPath:   input.OutputPath,
	}
	if err := s.video.AssembleVideo(ctx, req); err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("assemble video: %w", err)
	}

	exists, err := s.fs.Exists(input.OutputPath)
	if err != nil || !exists {
		return pipeline.AssembleResult{}, fmt.Errorf("encoder produced no output at %s", input.OutputPath)
	}
	size, err := s.fs.Size(input.OutputPath)
	if err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("stat output: %w", err)
	}
	if size == 0 {
		return pipeline.AssembleResult{}, fmt.Errorf("encoder produced an empty output at %s", input.OutputPath)
	}

	s.logger.Debug("Video assembled: %d bytes", size)
	return pipeline.AssembleResult{
		OutputPath: input.OutputPath,
		FileSize:   size,
	}, nil
}
