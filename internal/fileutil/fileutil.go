package fileutil

import (
	"fmt"
	"os"
)

// bytesPerMB is the binary megabyte. Size arithmetic divides by 1024*1024, not
// 1000*1000, so reported numbers stay comparable across tool versions.
const bytesPerMB = 1024 * 1024

// SizeBytes returns the size of the regular file at path.
func SizeBytes(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("stat %s: is a directory", path)
	}
	return info.Size(), nil
}

// SizeMB returns the file size in binary megabytes.
func SizeMB(path string) (float64, error) {
	size, err := SizeBytes(path)
	if err != nil {
		return 0, err
	}
	return MB(size), nil
}

// MB converts a byte count to binary megabytes.
func MB(size int64) float64 {
	return float64(size) / bytesPerMB
}

// Exists reports whether path refers to an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
