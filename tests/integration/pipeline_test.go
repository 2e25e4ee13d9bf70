// Package integration contains integration tests for the trailclean pipeline.
package integration

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/trailclean/pkg/adapters/imagingcodec"
	"github.com/user/trailclean/pkg/adapters/logger"
	"github.com/user/trailclean/pkg/adapters/nullsink"
	"github.com/user/trailclean/pkg/adapters/osfilesystem"
	"github.com/user/trailclean/pkg/mocks"
	"github.com/user/trailclean/pkg/orchestrator"
	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
	"github.com/user/trailclean/pkg/stages/assemble"
	"github.com/user/trailclean/pkg/stages/extract"
	"github.com/user/trailclean/pkg/stages/patchframes"
)

// gradientFrame builds a frame where every pixel encodes its own
// coordinates, so mirror and fill placement can be verified exactly.
func gradientFrame(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 7, A: 255})
		}
	}
	return img
}

// fakeVideo simulates the external decoder/encoder: extraction writes
// synthetic PNG frames to disk, assembly concatenates them into a
// stand-in output file.
func fakeVideo(t *testing.T, frameCount, w, h int) *mocks.VideoProcessor {
	t.Helper()
	codec := imagingcodec.New()

	return &mocks.VideoProcessor{
		ProbeFunc: func(ctx context.Context, path string) (ports.VideoInfo, error) {
			return ports.VideoInfo{FrameRate: ports.FrameRate{Num: 30000, Den: 1001}, HasAudio: true}, nil
		},
		ExtractFramesFunc: func(ctx context.Context, path, dir, pattern string) error {
			for i := 1; i <= frameCount; i++ {
				name := filepath.Join(dir, pipeline.FrameFileName(i))
				if err := codec.Save(gradientFrame(w, h), name); err != nil {
					return err
				}
			}
			return nil
		},
		AssembleVideoFunc: func(ctx context.Context, req ports.AssembleRequest) error {
			return os.WriteFile(req.OutputPath, []byte("encoded"), 0644)
		},
	}
}

func newOrchestrator(video *mocks.VideoProcessor, workers int) *orchestrator.Orchestrator {
	fs := osfilesystem.New()
	codec := imagingcodec.New()
	log := logger.NewNoop()

	extractStage := extract.NewStage(video, video, fs, log)
	patchStage := patchframes.NewStage(codec, nullsink.New(), &mocks.ProgressReporter{}, log, workers)
	assembleStage := assemble.NewStage(video, fs, log)

	return orchestrator.New(extractStage, patchStage, assembleStage, video, fs, log)
}

func TestPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.mp4")
	if err := os.WriteFile(inputPath, []byte("source"), 0644); err != nil {
		t.Fatal(err)
	}

	const frameCount = 10
	video := fakeVideo(t, frameCount, 320, 240)
	orch := newOrchestrator(video, 4)

	cfg := orchestrator.DefaultConfig()
	cfg.InputPath = inputPath
	cfg.OutputPath = filepath.Join(dir, "out.mp4")
	cfg.TempDir = filepath.Join(dir, "frames_in")
	cfg.KeepTemp = true

	result, err := orch.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if result.FrameCount != frameCount {
		t.Errorf("frame count = %d, want %d", result.FrameCount, frameCount)
	}
	if result.FrameRate.String() != "30000/1001" {
		t.Errorf("frame rate = %s", result.FrameRate.String())
	}
	if _, err := os.Stat(cfg.OutputPath); err != nil {
		t.Errorf("output file missing: %v", err)
	}

	// The encoder must be handed the frame pattern, the detected frame
	// rate and the original input as the audio source.
	if len(video.AssembleRequests) != 1 {
		t.Fatalf("expected 1 assemble request, got %d", len(video.AssembleRequests))
	}
	req := video.AssembleRequests[0]
	if req.FramePattern != filepath.Join(cfg.TempDir, pipeline.FramePattern) {
		t.Errorf("frame pattern = %s", req.FramePattern)
	}
	if req.AudioSource != inputPath {
		t.Errorf("audio source = %s, want %s", req.AudioSource, inputPath)
	}

	// Inspect a patched frame on disk. With the default geometry on a
	// 320x240 frame the patch covers rows 130..239 of columns 0..109:
	// rows 130..183 mirror rows 74..127 top to bottom reversed, and
	// rows 184..239 are a uniform fill.
	codec := imagingcodec.New()
	img, err := codec.Load(filepath.Join(cfg.TempDir, pipeline.FrameFileName(5)))
	if err != nil {
		t.Fatalf("load patched frame: %v", err)
	}
	patched, ok := img.(*image.NRGBA)
	if !ok {
		patched = asNRGBA(img)
	}
	src := gradientFrame(320, 240)

	for _, x := range []int{0, 50, 109} {
		for i := 0; i < 54; i++ {
			got := patched.NRGBAAt(x, 130+i)
			want := src.NRGBAAt(x, 127-i)
			if got != want {
				t.Fatalf("mirror mismatch at (%d,%d): got %v want %v", x, 130+i, got, want)
			}
		}
	}

	fill := patched.NRGBAAt(0, 184)
	for y := 184; y < 240; y++ {
		for x := 0; x < 110; x++ {
			if got := patched.NRGBAAt(x, y); got != fill {
				t.Fatalf("fill not uniform at (%d,%d): got %v want %v", x, y, got, fill)
			}
		}
	}

	// Pixels outside the patch are untouched.
	for _, p := range []image.Point{{110, 200}, {0, 74}, {200, 239}, {0, 129}} {
		if got, want := patched.NRGBAAt(p.X, p.Y), src.NRGBAAt(p.X, p.Y); got != want {
			t.Fatalf("pixel (%d,%d) changed: got %v want %v", p.X, p.Y, got, want)
		}
	}
}

func TestPipeline_RemovesTempDir(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.mp4")
	if err := os.WriteFile(inputPath, []byte("source"), 0644); err != nil {
		t.Fatal(err)
	}

	video := fakeVideo(t, 3, 160, 120)
	orch := newOrchestrator(video, 2)

	cfg := orchestrator.DefaultConfig()
	cfg.InputPath = inputPath
	cfg.OutputPath = filepath.Join(dir, "out.mp4")
	cfg.TempDir = filepath.Join(dir, "frames_in")

	if _, err := orch.Run(context.Background(), cfg); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if _, err := os.Stat(cfg.TempDir); !os.IsNotExist(err) {
		t.Errorf("temp directory still present: %v", err)
	}
}

func asNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
