// Package encoder wraps the ffmpeg command-line invocation for one file.
package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"shrink/internal/config"
	"shrink/internal/faults"
	"shrink/internal/fileutil"
)

var commandContext = exec.CommandContext

// Client defines single-file compression behaviour.
type Client interface {
	// Compress re-encodes inputPath and returns the output path. The input
	// file is never mutated or deleted.
	Compress(ctx context.Context, inputPath string) (string, error)
	// OutputPath reports where Compress will write without running anything.
	OutputPath(inputPath string) string
}

// FFmpeg invokes the ffmpeg binary with the configured argument set.
type FFmpeg struct {
	settings config.Encoder
}

// NewFFmpeg constructs a client from encoder settings.
func NewFFmpeg(settings config.Encoder) *FFmpeg {
	return &FFmpeg{settings: settings}
}

// OutputPath inserts the configured suffix before the extension, keeping the
// file in its original directory.
func (c *FFmpeg) OutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+c.settings.OutputSuffix+ext)
}

func (c *FFmpeg) args(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-c:v", c.settings.VideoCodec,
		"-preset", c.settings.Preset,
		"-crf", strconv.Itoa(c.settings.CRF),
		"-c:a", c.settings.AudioCodec,
		"-b:a", c.settings.AudioBitrate,
		"-y",
		outputPath,
	}
}

// Compress runs ffmpeg to completion. A non-zero exit becomes an *ExitError
// carrying the stderr stream verbatim; failures to launch the process are IO
// failures.
func (c *FFmpeg) Compress(ctx context.Context, inputPath string) (string, error) {
	if strings.TrimSpace(inputPath) == "" {
		return "", errors.New("input path required")
	}

	outputPath := c.OutputPath(inputPath)

	cmd := commandContext(ctx, c.settings.Binary, c.args(inputPath, outputPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{Path: inputPath, Stderr: stderr.String(), cause: err}
		}
		return "", faults.Wrap(faults.ErrIO, "run encoder", c.settings.Binary, err)
	}

	if !fileutil.Exists(outputPath) {
		return "", faults.Wrap(faults.ErrIO, "encode "+filepath.Base(inputPath), "encoder exited cleanly but produced no output", nil)
	}
	return outputPath, nil
}

// ExitError reports a non-zero encoder exit. Stderr holds the diagnostic
// stream content exactly as the process wrote it.
type ExitError struct {
	Path   string
	Stderr string
	cause  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("encode %s: %v: %s", filepath.Base(e.Path), e.cause, strings.TrimSpace(e.Stderr))
}

func (e *ExitError) Unwrap() []error {
	return []error{faults.ErrEncoding, e.cause}
}

var _ Client = (*FFmpeg)(nil)
