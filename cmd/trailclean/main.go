// Package main provides the CLI entry point for trailclean.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/trailclean/pkg/adapters/consoleprogress"
	"github.com/user/trailclean/pkg/adapters/ffmpegcli"
	"github.com/user/trailclean/pkg/adapters/filesink"
	"github.com/user/trailclean/pkg/adapters/imagingcodec"
	"github.com/user/trailclean/pkg/adapters/logger"
	"github.com/user/trailclean/pkg/adapters/mp4probe"
	"github.com/user/trailclean/pkg/adapters/nullsink"
	"github.com/user/trailclean/pkg/adapters/osfilesystem"
	"github.com/user/trailclean/pkg/config"
	"github.com/user/trailclean/pkg/orchestrator"
	"github.com/user/trailclean/pkg/ports"
	"github.com/user/trailclean/pkg/stages/assemble"
	"github.com/user/trailclean/pkg/stages/extract"
	"github.com/user/trailclean/pkg/stages/patchframes"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Clean   CleanCmd   `cmd:"" help:"Remove the watermark stamp from a video."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// CleanCmd defines the clean subcommand.
type CleanCmd struct {
	// Required arguments
	Input  string `arg:"" help:"Input video file path."`
	Output string `short:"o" help:"Output video file path (default: <input>_cleaned)."`

	// Preset
	Preset string `short:"p" help:"YAML preset file with geometry and processing options."`

	// Patch geometry (override preset). X is from the left edge, Y from
	// the bottom edge of the frame.
	PatchWidth   *int `help:"Patch region width in pixels (default: 110)."`
	PatchHeight  *int `help:"Patch region height in pixels (default: 110)."`
	PatchX       *int `help:"Patch region left offset in pixels (default: 0)."`
	PatchY       *int `help:"Patch region bottom offset in pixels (default: 0)."`
	MirrorHeight *int `help:"Height of the mirrored band in pixels (default: 54)."`
	MirrorOffset *int `help:"Distance above the patch to mirror from in pixels (default: 56)."`

	// Processing options
	Tmpdir   string `help:"Directory for extracted frames (default: frames_<input> next to the input)."`
	KeepTemp bool   `help:"Keep the extracted frames after the run."`
	Jobs     *int   `short:"j" help:"Number of parallel patch workers (default: number of CPUs)."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("trailclean"),
		kong.Description("Remove timestamp watermarks from trail camera videos."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the clean command.
func (cmd *CleanCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	codec := imagingcodec.New()
	ffmpeg := ffmpegcli.New(log)
	prober := mp4probe.New(ffmpeg, log)

	// Create debug sink
	var sink ports.DebugSink
	if cmd.Debug {
		if err := fs.MkdirAll(cmd.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cmd.DebugDir, fs, codec)
	} else {
		sink = nullsink.New()
	}

	// Create progress reporter
	var progress ports.ProgressReporter
	if cmd.Quiet {
		progress = consoleprogress.NewDiscard()
	} else {
		progress = consoleprogress.New()
	}

	// Create stages
	extractStage := extract.NewStage(ffmpeg, prober, fs, log)
	patchStage := patchframes.NewStage(codec, sink, progress, log, cfg.Workers)
	assembleStage := assemble.NewStage(ffmpeg, fs, log)

	// Create orchestrator
	orch := orchestrator.New(
		extractStage,
		patchStage,
		assembleStage,
		ffmpeg,
		fs,
		log,
	)

	log.Info(l10n.F("Starting watermark removal for %s", cfg.InputPath))

	started := time.Now()
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", result.OutputPath))
	log.Info(l10n.F("Total processing time: %s", time.Since(started).Round(time.Millisecond)))
	return nil
}

// buildConfig creates a Config from the preset file and CLI overrides.
func (cmd *CleanCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Preset != "" {
		loaded, err := config.LoadFromFile(cmd.Preset)
		if err != nil {
			return cfg, fmt.Errorf("load preset: %w", err)
		}
		cfg = loaded
	}

	cfg.InputPath = cmd.Input

	// Apply overrides
	if cmd.Output != "" {
		cfg.OutputPath = cmd.Output
	}
	if cmd.PatchWidth != nil {
		cfg.PatchWidth = *cmd.PatchWidth
	}
	if cmd.PatchHeight != nil {
		cfg.PatchHeight = *cmd.PatchHeight
	}
	if cmd.PatchX != nil {
		cfg.PatchX = *cmd.PatchX
	}
	if cmd.PatchY != nil {
		cfg.PatchY = *cmd.PatchY
	}
	if cmd.MirrorHeight != nil {
		cfg.MirrorHeight = *cmd.MirrorHeight
	}
	if cmd.MirrorOffset != nil {
		cfg.MirrorOffset = *cmd.MirrorOffset
	}
	if cmd.Tmpdir != "" {
		cfg.TempDir = cmd.Tmpdir
	}
	if cmd.KeepTemp {
		cfg.KeepTemp = true
	}
	if cmd.Jobs != nil {
		cfg.Workers = *cmd.Jobs
	}

	// Derive paths the caller left empty
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath(cfg.InputPath)
	}
	if cfg.TempDir == "" {
		cfg.TempDir = defaultTempDir(cfg.InputPath)
	}

	return cfg, nil
}

// defaultOutputPath derives "<stem>_cleaned<ext>" next to the input.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned" + ext
}

// defaultTempDir derives "frames_<stem>" next to the input.
func defaultTempDir(input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), "frames_"+stem)
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("trailclean version %s", version))
	return nil
}
