package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/user/trailclean/pkg/mocks"
	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
)

// mockExtractStage is a mock for the extract stage.
type mockExtractStage struct {
	result pipeline.ExtractResult
	err    error
	called bool
}

func (m *mockExtractStage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	m.called = true
	if m.err != nil {
		return pipeline.ExtractResult{}, m.err
	}
	return m.result, nil
}

// mockPatchStage is a mock for the patch stage.
type mockPatchStage struct {
	result pipeline.PatchResult
	err    error
	input  pipeline.PatchInput
	called bool
}

func (m *mockPatchStage) Execute(ctx context.Context, input pipeline.PatchInput) (pipeline.PatchResult, error) {
	m.called = true
	m.input = input
	if m.err != nil {
		return pipeline.PatchResult{}, m.err
	}
	return m.result, nil
}

// mockAssembleStage is a mock for the assemble stage.
type mockAssembleStage struct {
	result pipeline.AssembleResult
	err    error
	input  pipeline.AssembleInput
	called bool
}

func (m *mockAssembleStage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	m.called = true
	m.input = input
	if m.err != nil {
		return pipeline.AssembleResult{}, m.err
	}
	return m.result, nil
}

type fixture struct {
	extract  *mockExtractStage
	patch    *mockPatchStage
	assemble *mockAssembleStage
	video    *mocks.VideoProcessor
	fs       *mocks.FileSystem
}

func newFixture() *fixture {
	info := ports.VideoInfo{FrameRate: ports.FrameRate{Num: 30, Den: 1}, HasAudio: true}
	f := &fixture{
		extract: &mockExtractStage{
			result: pipeline.ExtractResult{
				Info:       info,
				FrameFiles: []string{"frame_000001.png", "frame_000002.png"},
				TempDir:    "frames_in",
			},
		},
		patch: &mockPatchStage{
			result: pipeline.PatchResult{Patched: 2},
		},
		assemble: &mockAssembleStage{
			result: pipeline.AssembleResult{OutputPath: "out.mp4", FileSize: 4096},
		},
		video: &mocks.VideoProcessor{},
		fs:    mocks.NewFileSystem(),
	}
	f.fs.WriteFile("in.mp4", []byte("video"))
	return f
}

func (f *fixture) orchestrator() *Orchestrator {
	return New(f.extract, f.patch, f.assemble, f.video, f.fs, mocks.NewLogger())
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.InputPath = "in.mp4"
	cfg.OutputPath = "out.mp4"
	cfg.TempDir = "frames_in"
	return cfg
}

func TestOrchestrator_Run(t *testing.T) {
	f := newFixture()
	f.fs.MkdirAll("frames_in")

	result, err := f.orchestrator().Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.video.VerifyCalled {
		t.Error("tooling was not verified")
	}
	if result.FrameCount != 2 {
		t.Errorf("frame count = %d, want 2", result.FrameCount)
	}
	if result.OutputPath != "out.mp4" || result.FileSize != 4096 {
		t.Errorf("unexpected result: %+v", result)
	}
	if !result.HasAudio {
		t.Error("expected audio flag carried through")
	}
	if f.patch.input.TempDir != "frames_in" || len(f.patch.input.FrameFiles) != 2 {
		t.Errorf("patch stage received wrong input: %+v", f.patch.input)
	}
	if f.assemble.input.InputPath != "in.mp4" {
		t.Errorf("assemble stage must receive the original input for audio muxing, got %q", f.assemble.input.InputPath)
	}

	// Temp directory removed after a successful run.
	if len(f.fs.RemoveAllCalls) != 1 || f.fs.RemoveAllCalls[0] != "frames_in" {
		t.Errorf("expected frames_in removed, got %v", f.fs.RemoveAllCalls)
	}
}

func TestOrchestrator_Run_ToolingUnavailable(t *testing.T) {
	f := newFixture()
	f.video.VerifyFunc = func() error { return errors.New("ffmpeg not found") }

	_, err := f.orchestrator().Run(context.Background(), testConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if f.extract.called {
		t.Error("pipeline ran despite missing tooling")
	}
}

func TestOrchestrator_Run_MissingInput(t *testing.T) {
	f := newFixture()
	cfg := testConfig()
	cfg.InputPath = "nope.mp4"

	_, err := f.orchestrator().Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if f.extract.called {
		t.Error("pipeline ran despite missing input")
	}
}

func TestOrchestrator_Run_InvalidGeometry(t *testing.T) {
	f := newFixture()
	cfg := testConfig()
	cfg.Geometry.Width = -1

	_, err := f.orchestrator().Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOrchestrator_Run_KeepTemp(t *testing.T) {
	f := newFixture()
	f.fs.MkdirAll("frames_in")
	cfg := testConfig()
	cfg.KeepTemp = true

	_, err := f.orchestrator().Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.fs.RemoveAllCalls) != 0 {
		t.Errorf("temp directory removed despite KeepTemp: %v", f.fs.RemoveAllCalls)
	}
}

func TestOrchestrator_Run_CleanupOnStageError(t *testing.T) {
	f := newFixture()
	f.fs.MkdirAll("frames_in")
	f.patch.err = errors.New("patch failed")

	_, err := f.orchestrator().Run(context.Background(), testConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if f.assemble.called {
		t.Error("assemble ran after patch failure")
	}
	if len(f.fs.RemoveAllCalls) != 1 {
		t.Errorf("expected cleanup after failure, got %v", f.fs.RemoveAllCalls)
	}
}

func TestOrchestrator_Run_CleanupFailureDoesNotMaskError(t *testing.T) {
	f := newFixture()
	f.fs.MkdirAll("frames_in")
	f.assemble.err = errors.New("encoder failed")
	f.fs.RemoveAllFunc = func(path string) error { return errors.New("permission denied") }

	_, err := f.orchestrator().Run(context.Background(), testConfig())
	if err == nil || !strings.Contains(err.Error(), "encoder failed") {
		t.Fatalf("expected the stage error, got %v", err)
	}
}

func TestOrchestrator_Run_NoCleanupWhenTempDirNeverCreated(t *testing.T) {
	f := newFixture()
	f.extract.err = errors.New("probe failed")

	_, err := f.orchestrator().Run(context.Background(), testConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(f.fs.RemoveAllCalls) != 0 {
		t.Errorf("removed a directory that was never created: %v", f.fs.RemoveAllCalls)
	}
}
