// Package clipper cuts segments out of locally available source videos, for
// turning high-retention sections into short promotional clips.
package clipper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const (
	defaultVideoCodec = "libx264"
	defaultAudioCodec = "aac"
)

// Options control clip extraction.
type Options struct {
	StartSeconds float64
	EndSeconds   float64
	VideoCodec   string // defaults to libx264
	AudioCodec   string // defaults to aac
}

// CreateClip extracts [start, end) from the source file into outPath using
// ffmpeg. The caller must have local access to the source video.
func CreateClip(ctx context.Context, sourcePath, outPath string, opts Options) error {
	if opts.EndSeconds <= opts.StartSeconds {
		return fmt.Errorf("invalid clip range: end %.2f must be after start %.2f", opts.EndSeconds, opts.StartSeconds)
	}
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("source video not accessible: %w", err)
	}

	videoCodec := opts.VideoCodec
	if videoCodec == "" {
		videoCodec = defaultVideoCodec
	}
	audioCodec := opts.AudioCodec
	if audioCodec == "" {
		audioCodec = defaultAudioCodec
	}

	args := []string{
		"-y",
		"-i", sourcePath,
		"-ss", strconv.FormatFloat(opts.StartSeconds, 'f', 3, 64),
		"-t", strconv.FormatFloat(opts.EndSeconds-opts.StartSeconds, 'f', 3, 64),
		"-c:v", videoCodec,
		"-c:a", audioCodec,
		outPath,
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w (output: %s)", err, string(output))
	}

	return nil
}
