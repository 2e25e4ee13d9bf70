// Package mp4probe reads video metadata directly from MP4 containers.
//
// Plain MP4 files carry everything the pipeline needs (frame rate,
// audio track presence) in the moov box, so probing them does not need
// an ffprobe process. Anything else falls back to the wrapped prober.
package mp4probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/user/trailclean/pkg/ports"
)

// Prober implements ports.VideoProber for MP4 files, delegating other
// container formats and unparseable files to a fallback prober.
type Prober struct {
	fallback ports.VideoProber
	logger   ports.Logger
}

// New creates a Prober that falls back to the given prober.
func New(fallback ports.VideoProber, logger ports.Logger) *Prober {
	return &Prober{
		fallback: fallback,
		logger:   logger.WithComponent("mp4probe"),
	}
}

// Probe returns frame rate and audio stream presence for a video file.
func (p *Prober) Probe(ctx context.Context, path string) (ports.VideoInfo, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		info, err := p.probeContainer(path)
		if err == nil {
			return info, nil
		}
		p.logger.Debug("Container probe failed, falling back: %s", err)
	}
	return p.fallback.Probe(ctx, path)
}

func (p *Prober) probeContainer(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, err
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}
	if mp4File.IsFragmented() {
		return ports.VideoInfo{}, fmt.Errorf("fragmented mp4 not supported by container probe")
	}
	if mp4File.Moov == nil {
		return ports.VideoInfo{}, fmt.Errorf("no moov box")
	}

	var info ports.VideoInfo
	var foundVideo bool
	for _, trak := range mp4File.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Mdhd == nil {
			continue
		}
		switch trak.Mdia.Hdlr.HandlerType {
		case "vide":
			var samples uint64
			if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsz != nil {
				samples = uint64(trak.Mdia.Minf.Stbl.Stsz.SampleNumber)
			}
			rate, err := frameRate(samples, trak.Mdia.Mdhd.Timescale, trak.Mdia.Mdhd.Duration)
			if err != nil {
				return ports.VideoInfo{}, err
			}
			info.FrameRate = rate
			foundVideo = true
		case "soun":
			info.HasAudio = true
		}
	}
	if !foundVideo {
		return ports.VideoInfo{}, fmt.Errorf("no video track found")
	}
	return info, nil
}

// frameRate derives the average frame rate samples*timescale/duration as
// a reduced rational.
func frameRate(samples uint64, timescale uint32, duration uint64) (ports.FrameRate, error) {
	if samples == 0 || timescale == 0 || duration == 0 {
		return ports.FrameRate{}, fmt.Errorf("cannot derive frame rate (samples=%d timescale=%d duration=%d)",
			samples, timescale, duration)
	}
	num := samples * uint64(timescale)
	den := duration
	g := gcd(num, den)
	return ports.FrameRate{Num: int(num / g), Den: int(den / g)}, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Ensure Prober implements ports.VideoProber
var _ ports.VideoProber = (*Prober)(nil)
