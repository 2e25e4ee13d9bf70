// Package extract implements the probe-and-decode stage.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
)

// Stage probes the source video and decodes it into numbered frame files.
type Stage struct {
	video  ports.VideoProcessor
	prober ports.VideoProber
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new extract stage. The prober may differ from the
// processor (e.g. a container-level fast path); pass the processor itself
// when no separate prober is wanted.
func NewStage(video ports.VideoProcessor, prober ports.VideoProber, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		video:  video,
		prober: prober,
		fs:     fs,
		logger: logger.WithComponent("extract"),
	}
}

// Execute probes the source and extracts all frames into the temp dir.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	s.logger.Debug("Probing %s", input.InputPath)
	info, err := s.prober.Probe(ctx, input.InputPath)
	if err != nil {
		return pipeline.ExtractResult{}, fmt.Errorf("probe video: %w", err)
	}
	if info.FrameRate.IsZero() {
		return pipeline.ExtractResult{}, fmt.Errorf("probe video: no frame rate in %s", input.InputPath)
	}
	s.logger.Debug("Detected frame rate %s (%.2f fps), audio: %v",
		info.FrameRate.String(), info.FrameRate.Float(), info.HasAudio)

	if err := s.fs.MkdirAll(input.TempDir); err != nil {
		return pipeline.ExtractResult{}, fmt.Errorf("create temp dir: %w", err)
	}

	s.logger.Debug("Extracting frames to %s", input.TempDir)
	if err := s.video.ExtractFrames(ctx, input.InputPath, input.TempDir, pipeline.FramePattern); err != nil {
		return pipeline.ExtractResult{}, fmt.Errorf("extract frames: %w", err)
	}

	names, err := s.fs.ListDir(input.TempDir)
	if err != nil {
		return pipeline.ExtractResult{}, fmt.Errorf("list frames: %w", err)
	}
	var frames []string
	for _, name := range names {
		if strings.HasSuffix(name, ".png") {
			frames = append(frames, name)
		}
	}
	if len(frames) == 0 {
		return pipeline.ExtractResult{}, fmt.Errorf("no frames decoded from %s", input.InputPath)
	}
	s.logger.Debug("Extracted %d frames", len(frames))

	return pipeline.ExtractResult{
		Info:       info,
		FrameFiles: frames,
		TempDir:    input.TempDir,
	}, nil
}
