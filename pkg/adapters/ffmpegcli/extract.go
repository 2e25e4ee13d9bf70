package ffmpegcli

import (
	"context"
	"fmt"
	"path/filepath"
)

// ExtractFrames decodes a video into numbered image files in dir.
func (t *Tool) ExtractFrames(ctx context.Context, path, dir, pattern string) error {
	if err := t.ensureVerified(); err != nil {
		return err
	}
	args := buildExtractArgs(path, filepath.Join(dir, pattern))
	if err := t.runFFmpeg(ctx, args); err != nil {
		return fmt.Errorf("extract frames from %s: %w", path, err)
	}
	return nil
}

func buildExtractArgs(input, outPattern string) []string {
	return []string{
		"-loglevel", "error",
		"-i", input,
		outPattern,
	}
}
