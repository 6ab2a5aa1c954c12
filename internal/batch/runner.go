package batch

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"shrink/internal/discovery"
	"shrink/internal/encoder"
	"shrink/internal/faults"
	"shrink/internal/fileutil"
	"shrink/internal/stats"
)

// Outcome is the result of processing one discovered video.
type Outcome struct {
	Path   string
	Output string
	Result stats.FileResult
	Err    error
}

// Report carries the finished aggregate plus the per-file outcomes, in
// processing order.
type Report struct {
	Summary  stats.Summary
	Outcomes []Outcome
}

// Runner drives one sequential batch: discovery, then per file encode,
// measure, and report. The summary accumulator is owned by the runner and
// returned by value; there is no shared mutable state.
type Runner struct {
	enc      encoder.Client
	logger   *slog.Logger
	reporter Reporter
}

// NewRunner constructs a runner. A nil reporter is replaced with a no-op one;
// a nil logger discards everything.
func NewRunner(enc encoder.Client, logger *slog.Logger, reporter Reporter) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if reporter == nil {
		reporter = NullReporter{}
	}
	return &Runner{enc: enc, logger: logger, reporter: reporter}
}

// Run processes every supported video directly inside dir, one at a time. A
// missing or invalid directory aborts before any file is touched; per-file
// failures are recorded and never stop the batch.
func (r *Runner) Run(ctx context.Context, dir string) (Report, error) {
	videos, err := discovery.Videos(dir)
	if err != nil {
		return Report{}, err
	}

	report := Report{Summary: stats.Summary{Directory: dir}}
	start := time.Now()
	r.reporter.BatchStarted(dir, len(videos))
	r.logger.Info("batch started", "dir", dir, "files", len(videos))

	for index, video := range videos {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		name := filepath.Base(video)
		r.reporter.FileStarted(index+1, len(videos), name)

		outcome := r.processFile(ctx, video)
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Err != nil {
			report.Summary.AddFailure()
			r.reporter.FileFailed(name, outcome.Err)
			r.logger.Warn("file failed", "file", name, "kind", faults.Kind(outcome.Err), "error", outcome.Err)
			continue
		}
		report.Summary.AddSuccess(outcome.Result)
		r.reporter.FileSucceeded(name, outcome.Result)
	}

	report.Summary.Elapsed = time.Since(start)
	r.reporter.BatchFinished(report.Summary)
	r.logger.Info("batch finished",
		"total", report.Summary.TotalFiles,
		"succeeded", report.Summary.Succeeded,
		"failed", report.Summary.Failed,
		"elapsed", stats.FormatElapsed(report.Summary.Elapsed))
	return report, nil
}

func (r *Runner) processFile(ctx context.Context, video string) Outcome {
	outcome := Outcome{Path: video}

	output, err := r.enc.Compress(ctx, video)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Output = output

	originalBytes, err := fileutil.SizeBytes(video)
	if err != nil {
		outcome.Err = faults.Wrap(faults.ErrIO, "measure original", video, err)
		return outcome
	}
	compressedBytes, err := fileutil.SizeBytes(output)
	if err != nil {
		outcome.Err = faults.Wrap(faults.ErrIO, "measure output", output, err)
		return outcome
	}

	outcome.Result = stats.NewFileResult(fileutil.MB(originalBytes), fileutil.MB(compressedBytes))
	r.logger.Debug("file compressed",
		"file", filepath.Base(video),
		"original", humanize.IBytes(uint64(originalBytes)),
		"compressed", humanize.IBytes(uint64(compressedBytes)),
		"reduction_pct", outcome.Result.ReductionPct)
	return outcome
}
