package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"shrink/internal/config"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("Target directory", dir)
	if !result.Passed {
		t.Fatalf("expected writable temp dir to pass, got %+v", result)
	}

	missing := CheckDirectoryAccess("Target directory", filepath.Join(dir, "absent"))
	if missing.Passed {
		t.Fatalf("expected missing dir to fail, got %+v", missing)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	notDir := CheckDirectoryAccess("Target directory", file)
	if notDir.Passed {
		t.Fatalf("expected regular file to fail, got %+v", notDir)
	}
}

func TestCheckEncoder(t *testing.T) {
	binDir := t.TempDir()
	encoder := filepath.Join(binDir, "ffmpeg")
	if err := os.WriteFile(encoder, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	result := CheckEncoder("ffmpeg")
	if !result.Passed {
		t.Fatalf("expected encoder to pass, got %+v", result)
	}

	t.Setenv("PATH", "")
	result = CheckEncoder("ffmpeg")
	if result.Passed {
		t.Fatalf("expected missing encoder to fail, got %+v", result)
	}
}

func TestCheckDiskSpace(t *testing.T) {
	result := CheckDiskSpace("Disk space", t.TempDir())
	if result.Detail == "" {
		t.Fatalf("expected detail, got %+v", result)
	}
}

func TestRunAllCoversEveryCheck(t *testing.T) {
	cfg := config.Default()
	results := RunAll(&cfg, t.TempDir())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if Passed(nil) != true {
		t.Fatal("empty result set counts as passed")
	}
	if Passed([]Result{{Passed: true}, {Passed: false}}) {
		t.Fatal("any failure must fail the set")
	}
}
