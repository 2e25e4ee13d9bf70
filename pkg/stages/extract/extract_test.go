package extract

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/trailclean/pkg/mocks"
	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
)

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	video := &mocks.VideoProcessor{
		ProbeFunc: func(ctx context.Context, path string) (ports.VideoInfo, error) {
			return ports.VideoInfo{FrameRate: ports.FrameRate{Num: 30000, Den: 1001}, HasAudio: true}, nil
		},
		ExtractFramesFunc: func(ctx context.Context, path, dir, pattern string) error {
			for i := 1; i <= 3; i++ {
				fs.WriteFile(filepath.Join(dir, pipeline.FrameFileName(i)), []byte("png"))
			}
			return nil
		},
	}

	stage := NewStage(video, video, fs, mocks.NewLogger())
	result, err := stage.Execute(context.Background(), pipeline.ExtractInput{
		InputPath: "in.mp4",
		TempDir:   "frames_in",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.FrameFiles) != 3 {
		t.Errorf("expected 3 frame files, got %d", len(result.FrameFiles))
	}
	if result.FrameFiles[0] != "frame_000001.png" {
		t.Errorf("unexpected first frame file: %s", result.FrameFiles[0])
	}
	if !result.Info.HasAudio {
		t.Error("expected audio stream")
	}
	if got := result.Info.FrameRate.String(); got != "30000/1001" {
		t.Errorf("frame rate = %s, want 30000/1001", got)
	}
}

func TestStage_Execute_ProbeFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	video := &mocks.VideoProcessor{
		ProbeFunc: func(ctx context.Context, path string) (ports.VideoInfo, error) {
			return ports.VideoInfo{}, errors.New("no such file")
		},
	}

	stage := NewStage(video, video, fs, mocks.NewLogger())
	_, err := stage.Execute(context.Background(), pipeline.ExtractInput{InputPath: "missing.mp4", TempDir: "d"})
	if err == nil {
		t.Fatal("expected error")
	}
	// Probe failure must abort before any decoding happens.
	if len(video.ExtractCalls) != 0 {
		t.Errorf("extract called %d times after probe failure", len(video.ExtractCalls))
	}
}

func TestStage_Execute_ZeroFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	video := &mocks.VideoProcessor{} // default extract writes nothing

	stage := NewStage(video, video, fs, mocks.NewLogger())
	_, err := stage.Execute(context.Background(), pipeline.ExtractInput{InputPath: "in.mp4", TempDir: "d"})
	if err == nil {
		t.Fatal("expected error for zero decoded frames")
	}
}

func TestStage_Execute_IgnoresForeignFiles(t *testing.T) {
	fs := mocks.NewFileSystem()
	video := &mocks.VideoProcessor{
		ExtractFramesFunc: func(ctx context.Context, path, dir, pattern string) error {
			fs.WriteFile(filepath.Join(dir, pipeline.FrameFileName(1)), []byte("png"))
			fs.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"))
			return nil
		},
	}

	stage := NewStage(video, video, fs, mocks.NewLogger())
	result, err := stage.Execute(context.Background(), pipeline.ExtractInput{InputPath: "in.mp4", TempDir: "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.FrameFiles) != 1 {
		t.Errorf("expected only the png frame, got %v", result.FrameFiles)
	}
}
