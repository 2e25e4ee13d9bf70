package ffmpegcli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/user/trailclean/pkg/ports"
)

// Probe reads the frame rate of the first video stream and whether the
// file has any audio stream.
func (t *Tool) Probe(ctx context.Context, path string) (ports.VideoInfo, error) {
	if err := t.ensureVerified(); err != nil {
		return ports.VideoInfo{}, err
	}

	rateOut, err := t.runFFprobe(ctx, []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "csv=p=0",
		path,
	})
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("probe %s: %w", path, err)
	}

	rate, err := ParseFrameRate(strings.TrimSpace(rateOut))
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("probe %s: %w", path, err)
	}

	audioOut, err := t.runFFprobe(ctx, []string{
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		path,
	})
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("probe %s: %w", path, err)
	}

	return ports.VideoInfo{
		FrameRate: rate,
		HasAudio:  strings.TrimSpace(audioOut) != "",
	}, nil
}

// ParseFrameRate parses ffprobe's r_frame_rate notation, either a plain
// integer ("25") or a rational ("30000/1001").
func ParseFrameRate(s string) (ports.FrameRate, error) {
	if s == "" {
		return ports.FrameRate{}, fmt.Errorf("empty frame rate")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.Atoi(num)
		if err != nil {
			return ports.FrameRate{}, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		d, err := strconv.Atoi(den)
		if err != nil {
			return ports.FrameRate{}, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		if n <= 0 || d <= 0 {
			return ports.FrameRate{}, fmt.Errorf("non-positive frame rate %q", s)
		}
		return ports.FrameRate{Num: n, Den: d}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return ports.FrameRate{}, fmt.Errorf("invalid frame rate %q: %w", s, err)
	}
	if n <= 0 {
		return ports.FrameRate{}, fmt.Errorf("non-positive frame rate %q", s)
	}
	return ports.FrameRate{Num: n, Den: 1}, nil
}
