// Package preflight runs the checks a batch needs before its first encode:
// target directory access, encoder availability, and free disk space.
package preflight

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"shrink/internal/config"
	"shrink/internal/deps"
)

// minFreeBytes is the free-space floor below which a run is refused. Encoding
// writes a sibling file per input, so a nearly full volume fails mid-batch in
// the worst possible way.
const minFreeBytes = 256 * 1024 * 1024

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all checks for a batch over dir. The caller decides what a
// failed result means; nothing here prints or exits.
func RunAll(cfg *config.Config, dir string) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Target directory", dir),
		CheckEncoder(cfg.Encoder.Binary),
		CheckDiskSpace("Disk space", dir),
	}
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckEncoder resolves the encoder binary on PATH.
func CheckEncoder(binary string) Result {
	status := deps.CheckEncoder(binary)
	if !status.Available {
		return Result{Name: status.Name, Detail: status.Detail}
	}
	return Result{Name: status.Name, Passed: true, Detail: status.Command}
}

// CheckDiskSpace verifies the volume holding path has room for new outputs.
func CheckDiskSpace(name, path string) Result {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("statfs %s: %v", path, err)}
	}
	free := fs.Bavail * uint64(fs.Bsize)
	if free < minFreeBytes {
		return Result{Name: name, Detail: fmt.Sprintf("only %s free on %s", humanize.IBytes(free), path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s free", humanize.IBytes(free))}
}
