// Package stats holds the size-reduction arithmetic and the batch aggregate.
package stats

import (
	"fmt"
	"time"
)

// FileResult describes a successful compression of a single file. Sizes are in
// binary megabytes.
type FileResult struct {
	OriginalMB   float64
	CompressedMB float64
	ReductionPct float64
}

// NewFileResult derives the per-file reduction from the measured sizes.
func NewFileResult(originalMB, compressedMB float64) FileResult {
	return FileResult{
		OriginalMB:   originalMB,
		CompressedMB: compressedMB,
		ReductionPct: Reduction(originalMB, compressedMB),
	}
}

// Reduction returns the percentage size reduction. A zero-size original
// reports 0% rather than propagating a division by zero; an empty input has
// nothing to reduce.
func Reduction(originalMB, compressedMB float64) float64 {
	if originalMB == 0 {
		return 0
	}
	return (originalMB - compressedMB) / originalMB * 100
}

// Summary is the running aggregate over one batch. It is owned by the single
// control goroutine of the runner; callers receive it by value when the batch
// finishes.
type Summary struct {
	Directory    string
	TotalFiles   int
	Succeeded    int
	Failed       int
	OriginalMB   float64
	CompressedMB float64
	Elapsed      time.Duration
}

// AddSuccess records a successful file result. Size totals accumulate only
// here, so failed files never skew the aggregate.
func (s *Summary) AddSuccess(res FileResult) {
	s.TotalFiles++
	s.Succeeded++
	s.OriginalMB += res.OriginalMB
	s.CompressedMB += res.CompressedMB
}

// AddFailure records a failed file.
func (s *Summary) AddFailure() {
	s.TotalFiles++
	s.Failed++
}

// OverallReduction computes the aggregate reduction from the summed totals.
// This is deliberately not the mean of the per-file percentages: large files
// must weigh more than small ones.
func (s Summary) OverallReduction() float64 {
	return Reduction(s.OriginalMB, s.CompressedMB)
}

// FormatElapsed renders a duration as zero-padded HH:MM:SS. Hours are not
// capped at two digits.
func FormatElapsed(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
