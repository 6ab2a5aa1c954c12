package encoder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shrink/internal/config"
	"shrink/internal/faults"
)

func testSettings(binary string) config.Encoder {
	settings := config.Default().Encoder
	settings.Binary = binary
	return settings
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestOutputPathInsertsSuffixBeforeExtension(t *testing.T) {
	client := NewFFmpeg(testSettings("ffmpeg"))
	got := client.OutputPath(filepath.Join("/videos", "holiday.mp4"))
	want := filepath.Join("/videos", "holiday_compressed.mp4")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathHonorsConfiguredSuffix(t *testing.T) {
	settings := testSettings("ffmpeg")
	settings.OutputSuffix = "_small"
	client := NewFFmpeg(settings)
	got := client.OutputPath("/v/a.mkv")
	if got != filepath.Join("/v", "a_small.mkv") {
		t.Fatalf("unexpected output path %q", got)
	}
}

func TestArgsMatchFixedContract(t *testing.T) {
	client := NewFFmpeg(testSettings("ffmpeg"))
	got := client.args("in.mp4", "out.mp4")
	want := []string{"-i", "in.mp4", "-c:v", "libx264", "-preset", "veryfast", "-crf", "28", "-c:a", "aac", "-b:a", "128k", "-y", "out.mp4"}
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompressSuccessCreatesOutputAndKeepsInput(t *testing.T) {
	// Stub encoder: writes a byte to its final argument.
	script := writeScript(t, "ffmpeg", `for arg; do out=$arg; done
printf x > "$out"
exit 0
`)
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(input, []byte("original"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	client := NewFFmpeg(testSettings(script))
	output, err := client.Compress(context.Background(), input)
	if err != nil {
		t.Fatalf("Compress returned error: %v", err)
	}
	if output != filepath.Join(dir, "clip_compressed.mp4") {
		t.Fatalf("unexpected output path %q", output)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("expected output to exist: %v", err)
	}
	contents, err := os.ReadFile(input)
	if err != nil || string(contents) != "original" {
		t.Fatalf("input must not be mutated, got %q err %v", contents, err)
	}
}

func TestCompressNonZeroExitCapturesStderr(t *testing.T) {
	script := writeScript(t, "ffmpeg", `echo "moov atom not found" >&2
exit 1
`)
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.mov")
	if err := os.WriteFile(input, []byte("x"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	client := NewFFmpeg(testSettings(script))
	_, err := client.Compress(context.Background(), input)
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !errors.Is(err, faults.ErrEncoding) {
		t.Fatalf("expected encoding error kind, got %v", err)
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if !strings.Contains(exitErr.Stderr, "moov atom not found") {
		t.Fatalf("stderr not preserved: %q", exitErr.Stderr)
	}
}

func TestCompressMissingBinaryIsIOFailure(t *testing.T) {
	client := NewFFmpeg(testSettings(filepath.Join(t.TempDir(), "no-such-encoder")))
	_, err := client.Compress(context.Background(), "in.mp4")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected io error kind, got %v", err)
	}
}

func TestCompressCleanExitWithoutOutputIsIOFailure(t *testing.T) {
	script := writeScript(t, "ffmpeg", "exit 0\n")
	dir := t.TempDir()
	input := filepath.Join(dir, "ghost.mkv")
	if err := os.WriteFile(input, []byte("x"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	client := NewFFmpeg(testSettings(script))
	_, err := client.Compress(context.Background(), input)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected io error when output is missing, got %v", err)
	}
}
