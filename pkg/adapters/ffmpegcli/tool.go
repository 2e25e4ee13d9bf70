package ffmpegcli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/user/trailclean/pkg/ports"
)

// Tool implements ports.VideoProcessor using the ffmpeg and ffprobe
// command line tools.
type Tool struct {
	ffmpegPath  string
	ffprobePath string
	logger      ports.Logger
}

// New creates a new Tool. Verify must succeed before any other call.
func New(logger ports.Logger) *Tool {
	return &Tool{
		logger: logger.WithComponent("ffmpeg"),
	}
}

// Verify locates ffmpeg and ffprobe and caches their paths.
func (t *Tool) Verify() error {
	ffmpegPath, err := findExecutable("ffmpeg", "FFMPEG_PATH", ErrFFmpegNotFound)
	if err != nil {
		return err
	}
	ffprobePath, err := findExecutable("ffprobe", "FFPROBE_PATH", ErrFFprobeNotFound)
	if err != nil {
		return err
	}
	t.ffmpegPath = ffmpegPath
	t.ffprobePath = ffprobePath
	t.logger.Debug("Using ffmpeg at %s, ffprobe at %s", ffmpegPath, ffprobePath)
	return nil
}

func (t *Tool) ensureVerified() error {
	if t.ffmpegPath == "" || t.ffprobePath == "" {
		return t.Verify()
	}
	return nil
}

// findExecutable searches for a tool by env override, PATH, then common
// install locations.
func findExecutable(name, envVar string, notFound error) (string, error) {
	if envPath := os.Getenv(envVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: %s %s not found", notFound, envVar, envPath)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}

	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\` + execName,
			`C:\Program Files\ffmpeg\bin\` + execName,
			`C:\Program Files (x86)\ffmpeg\bin\` + execName,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/" + name,
			"/usr/local/bin/" + name,
			"/usr/bin/" + name,
		}
	default:
		commonPaths = []string{
			"/usr/bin/" + name,
			"/usr/local/bin/" + name,
			"/opt/homebrew/bin/" + name,
			"/snap/bin/" + name,
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", notFound
}

// runFFmpeg runs ffmpeg with the given arguments, returning stderr in the
// error when the process fails.
func (t *Tool) runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, t.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w\nstderr: %s", err, stderr.String())
	}
	return nil
}

// runFFprobe runs ffprobe and returns its stdout.
func (t *Tool) runFFprobe(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, t.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffprobe failed: %w\nstderr: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

// Ensure Tool implements ports.VideoProcessor
var _ ports.VideoProcessor = (*Tool)(nil)
