package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestCheckEncoderMissing(t *testing.T) {
	t.Setenv("PATH", "")
	status := CheckEncoder("ffmpeg")
	if status.Available {
		t.Fatal("expected encoder resolution to fail with empty PATH")
	}
	if status.Detail == "" {
		t.Fatal("expected detail message when encoder is unavailable")
	}
}

func TestCheckEncoderResolvesFromPath(t *testing.T) {
	binDir := t.TempDir()
	encoder := filepath.Join(binDir, "ffmpeg")
	if err := os.WriteFile(encoder, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	status := CheckEncoder("ffmpeg")
	if !status.Available {
		t.Fatalf("expected encoder to be available, got detail %q", status.Detail)
	}
	if status.Command != encoder {
		t.Fatalf("expected resolved path %q, got %q", encoder, status.Command)
	}
}
