package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSizeMBUsesBinaryMegabytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half.bin")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0}, 512*1024), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	size, err := SizeMB(path)
	if err != nil {
		t.Fatalf("SizeMB returned error: %v", err)
	}
	if size != 0.5 {
		t.Fatalf("expected 0.5 MB for 512 KiB file, got %v", size)
	}
}

func TestSizeBytesMissingFile(t *testing.T) {
	if _, err := SizeBytes(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSizeBytesRejectsDirectory(t *testing.T) {
	if _, err := SizeBytes(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if Exists(path) {
		t.Fatal("expected missing file to not exist")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !Exists(path) {
		t.Fatal("expected file to exist")
	}
	if Exists(dir) {
		t.Fatal("directories are not regular files")
	}
}
