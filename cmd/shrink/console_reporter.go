package main

import (
	"fmt"
	"io"
	"strings"

	"shrink/internal/stats"
)

const reportRule = 50

// consoleReporter renders batch events as the human-readable report on
// stdout. Log lines go to stderr, so the two streams never interleave.
type consoleReporter struct {
	out      io.Writer
	colorize bool
}

func newConsoleReporter(out io.Writer, colorize bool) *consoleReporter {
	return &consoleReporter{out: out, colorize: colorize}
}

func (r *consoleReporter) BatchStarted(dir string, total int) {
	if total == 0 {
		fmt.Fprintf(r.out, "No supported video files found in %q\n", dir)
		return
	}
	fmt.Fprintf(r.out, "\nFound %d video files to compress\n", total)
	fmt.Fprintln(r.out, "Starting batch compression...")
	fmt.Fprintln(r.out, strings.Repeat("=", reportRule))
}

func (r *consoleReporter) FileStarted(index, total int, name string) {
	fmt.Fprintf(r.out, "\nProcessing (%d/%d): %s\n", index, total, name)
}

func (r *consoleReporter) FileSucceeded(name string, result stats.FileResult) {
	fmt.Fprintln(r.out, r.paint(ansiGreen, "✓ Compressed successfully:"))
	fmt.Fprintf(r.out, "  Original size: %.2f MB\n", result.OriginalMB)
	fmt.Fprintf(r.out, "  Compressed size: %.2f MB\n", result.CompressedMB)
	fmt.Fprintf(r.out, "  Reduction: %.1f%%\n", result.ReductionPct)
}

func (r *consoleReporter) FileFailed(name string, err error) {
	fmt.Fprintln(r.out, r.paint(ansiRed, fmt.Sprintf("✗ Failed to compress: %v", err)))
}

func (r *consoleReporter) BatchFinished(summary stats.Summary) {
	if summary.TotalFiles == 0 {
		return
	}
	fmt.Fprintln(r.out, "\n"+strings.Repeat("=", reportRule))
	fmt.Fprintln(r.out, "Compression Summary:")
	fmt.Fprintf(r.out, "Total videos processed: %d\n", summary.TotalFiles)
	fmt.Fprintf(r.out, "Successful compressions: %d\n", summary.Succeeded)
	fmt.Fprintf(r.out, "Failed compressions: %d\n", summary.Failed)
	if summary.Succeeded > 0 {
		fmt.Fprintf(r.out, "Total original size: %.2f MB\n", summary.OriginalMB)
		fmt.Fprintf(r.out, "Total compressed size: %.2f MB\n", summary.CompressedMB)
		fmt.Fprintf(r.out, "Overall reduction: %.1f%%\n", summary.OverallReduction())
	}
	fmt.Fprintf(r.out, "Total time: %s\n", stats.FormatElapsed(summary.Elapsed))
	fmt.Fprintln(r.out, strings.Repeat("=", reportRule))
}

func (r *consoleReporter) paint(color, text string) string {
	if !r.colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}
