// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/user/trailclean/pkg/patch"
	"github.com/user/trailclean/pkg/pipeline"
	"github.com/user/trailclean/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input/Output
	InputPath  string
	OutputPath string

	// Frame workspace
	TempDir  string
	KeepTemp bool

	// Patch
	Geometry patch.Geometry

	// Parallelism (0 means one worker per CPU)
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Geometry: patch.Default(),
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	extractStage  pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	patchStage    pipeline.Stage[pipeline.PatchInput, pipeline.PatchResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	video         ports.VideoProcessor
	fs            ports.FileSystem
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	patchStage pipeline.Stage[pipeline.PatchInput, pipeline.PatchResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	video ports.VideoProcessor,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		extractStage:  extractStage,
		patchStage:    patchStage,
		assembleStage: assembleStage,
		video:         video,
		fs:            fs,
		logger:        logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if err := o.video.Verify(); err != nil {
		o.logger.Error(l10n.F("Video tooling unavailable: %s", err))
		return RunResult{}, fmt.Errorf("verify video tooling: %w", err)
	}

	exists, err := o.fs.Exists(config.InputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("check input: %w", err)
	}
	if !exists {
		o.logger.Error(l10n.F("Input video not found: %s", config.InputPath))
		return RunResult{}, fmt.Errorf("input video not found: %s", config.InputPath)
	}

	if err := config.Geometry.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("patch geometry: %w", err)
	}

	o.logger.Info(l10n.T("Starting pipeline"))

	// The frame directory is removed on every exit path unless the caller
	// asked to keep it. Cleanup failure must not mask a pipeline error.
	defer o.cleanup(config)

	// 1. Decode frames
	o.logger.Info(l10n.F("Extracting frames from %s", config.InputPath))
	extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{
		InputPath: config.InputPath,
		TempDir:   config.TempDir,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to extract frames: %s", err))
		return RunResult{}, fmt.Errorf("extract stage: %w", err)
	}
	o.logger.Info(l10n.F("Extracted %d frames at %s fps", len(extracted.FrameFiles), extracted.Info.FrameRate.String()))

	// 2. Patch frames
	patched, err := o.patchStage.Execute(ctx, pipeline.PatchInput{
		TempDir:    config.TempDir,
		FrameFiles: extracted.FrameFiles,
		Geometry:   config.Geometry,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to patch frames: %s", err))
		return RunResult{}, fmt.Errorf("patch stage: %w", err)
	}
	o.logger.Info(l10n.F("Patched %d frames", patched.Patched))

	// 3. Reassemble video
	o.logger.Info(l10n.F("Assembling video to %s", config.OutputPath))
	assembled, err := o.assembleStage.Execute(ctx, pipeline.AssembleInput{
		TempDir:    config.TempDir,
		Info:       extracted.Info,
		InputPath:  config.InputPath,
		OutputPath: config.OutputPath,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to assemble video: %s", err))
		return RunResult{}, fmt.Errorf("assemble stage: %w", err)
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		FrameCount: patched.Patched,
		FrameRate:  extracted.Info.FrameRate,
		HasAudio:   extracted.Info.HasAudio,
		OutputPath: assembled.OutputPath,
		FileSize:   assembled.FileSize,
	}, nil
}

// cleanup removes the temporary frame directory, best effort.
func (o *Orchestrator) cleanup(config Config) {
	if config.KeepTemp {
		o.logger.Info(l10n.F("Keeping temporary frames in %s", config.TempDir))
		return
	}
	exists, err := o.fs.Exists(config.TempDir)
	if err != nil || !exists {
		return
	}
	if err := o.fs.RemoveAll(config.TempDir); err != nil {
		o.logger.Warn(l10n.F("Failed to remove temporary directory: %s", err))
	}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	FrameCount int
	FrameRate  ports.FrameRate
	HasAudio   bool
	OutputPath string
	FileSize   int64
}
