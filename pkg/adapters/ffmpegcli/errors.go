// Package ffmpegcli drives the external ffmpeg/ffprobe tools for video
// decode, probe and encode.
package ffmpegcli

import "errors"

var (
	// ErrFFmpegNotFound indicates ffmpeg is not installed or not in PATH.
	ErrFFmpegNotFound = errors.New("ffmpeg not found: install ffmpeg or set FFMPEG_PATH")

	// ErrFFprobeNotFound indicates ffprobe is not installed or not in PATH.
	ErrFFprobeNotFound = errors.New("ffprobe not found: install ffmpeg or set FFPROBE_PATH")
)
