// Package patchframes implements the parallel frame patching stage.
package patchframes

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/user/trailclean/pkg/patch"
	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
)

// Stage rewrites every extracted frame with the watermark patch applied.
// Frames are independent, so the stage is a plain parallel map over the
// frame index range; the only synchronization is the join before the
// assemble stage runs.
type Stage struct {
	codec      ports.FrameCodec
	sink       ports.DebugSink
	progress   ports.ProgressReporter
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new patch stage.
func NewStage(codec ports.FrameCodec, sink ports.DebugSink, progress ports.ProgressReporter, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		codec:      codec,
		sink:       sink,
		progress:   progress,
		logger:     logger.WithComponent("patch"),
		numWorkers: numWorkers,
	}
}

// Execute patches all frames in place.
func (s *Stage) Execute(ctx context.Context, input pipeline.PatchInput) (pipeline.PatchResult, error) {
	total := len(input.FrameFiles)
	if total == 0 {
		return pipeline.PatchResult{}, nil
	}

	s.logger.Debug("Patching %d frames with %d workers", total, s.numWorkers)
	s.progress.Start(total)
	defer s.progress.Finish()

	jobs := make(chan int, total)
	errChan := make(chan error, s.numWorkers)
	var done atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, input, jobs, errChan, &done)
	}

	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errChan)

	// A fatal error in any worker fails the whole run; a partially
	// patched video is not acceptable output.
	if err := <-errChan; err != nil {
		return pipeline.PatchResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return pipeline.PatchResult{}, err
	}

	s.logger.Debug("Patching completed")
	return pipeline.PatchResult{Patched: int(done.Load())}, nil
}

// worker processes frame indices from the jobs channel.
func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	input pipeline.PatchInput,
	jobs <-chan int,
	errChan chan<- error,
	done *atomic.Int64,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := s.patchFrame(input, idx); err != nil {
			select {
			case errChan <- fmt.Errorf("patch frame %d: %w", idx, err):
			default:
			}
			return
		}

		s.progress.Advance(int(done.Add(1)))
	}
}

// patchFrame loads, patches and rewrites a single frame file.
func (s *Stage) patchFrame(input pipeline.PatchInput, idx int) error {
	path := filepath.Join(input.TempDir, input.FrameFiles[idx])

	img, err := s.codec.Load(path)
	if err != nil {
		return err
	}

	patched := patch.Apply(img, input.Geometry)

	if idx == 0 && s.sink.Enabled() {
		patchRect, mirrorRect := input.Geometry.Regions(img.Bounds())
		s.sink.SaveGeometryPreview(img, patchRect, mirrorRect)
		s.sink.SavePatchedFrame(idx, patched)
	}

	return s.codec.Save(patched, path)
}
