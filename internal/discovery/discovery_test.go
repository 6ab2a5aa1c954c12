package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"shrink/internal/faults"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestVideosFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "movie.mp4"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	videos, err := Videos(dir)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("expected exactly one video, got %v", videos)
	}
	if videos[0] != filepath.Join(dir, "movie.mp4") {
		t.Fatalf("unexpected path: %q", videos[0])
	}
}

func TestVideosMatchesCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "clip.MKV"))
	writeFile(t, filepath.Join(dir, "trailer.Mov"))

	videos, err := Videos(dir)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected both files matched, got %v", videos)
	}
}

func TestVideosSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.mp4"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "nested.mp4", "inner.mp4"))
	writeFile(t, filepath.Join(dir, "top.avi"))

	videos, err := Videos(dir)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	if len(videos) != 1 || filepath.Base(videos[0]) != "top.avi" {
		t.Fatalf("expected only the top-level file, got %v", videos)
	}
}

func TestVideosSortedAndUnique(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.mp4", "a.mp4", "b.mkv"} {
		writeFile(t, filepath.Join(dir, name))
	}

	videos, err := Videos(dir)
	if err != nil {
		t.Fatalf("Videos returned error: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %v", videos)
	}
	if !sort.StringsAreSorted(videos) {
		t.Fatalf("expected sorted order, got %v", videos)
	}
	seen := map[string]struct{}{}
	for _, v := range videos {
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate entry %q", v)
		}
		seen[v] = struct{}{}
	}
}

func TestVideosMissingDirectory(t *testing.T) {
	_, err := Videos(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVideosRejectsFileAsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.mp4")
	writeFile(t, path)

	_, err := Videos(path)
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-directory, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("a.MP4") || !Supported("b.mkv") {
		t.Fatal("expected supported extensions to match")
	}
	if Supported("c.txt") || Supported("noext") {
		t.Fatal("expected unsupported names to be rejected")
	}
}
