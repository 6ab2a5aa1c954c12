// Package discovery enumerates the video files a batch will process.
package discovery

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"shrink/internal/faults"
)

// SupportedExtensions is the extension allow-list, matched case-insensitively.
var SupportedExtensions = map[string]struct{}{
	".mp4": {},
	".avi": {},
	".mov": {},
	".mkv": {},
}

// Supported reports whether the file name carries a supported video extension.
func Supported(name string) bool {
	_, ok := SupportedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Videos returns the supported video files directly inside dir, sorted by
// name. The scan is non-recursive; subdirectories and non-regular entries are
// skipped. A missing dir, or a dir that is not a directory, is a not-found
// failure.
func Videos(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrNotFound, "discover videos", "directory "+dir+" does not exist", nil)
		}
		return nil, faults.Wrap(faults.ErrIO, "discover videos", "", err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrNotFound, "discover videos", dir+" is not a directory", nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "discover videos", "", err)
	}

	// os.ReadDir returns entries sorted by name, which gives the stable
	// ordering the batch report relies on.
	var videos []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !Supported(entry.Name()) {
			continue
		}
		videos = append(videos, filepath.Join(dir, entry.Name()))
	}
	return videos, nil
}
