package history_test

import (
	"context"
	"testing"
	"time"

	"shrink/internal/batch"
	"shrink/internal/faults"
	"shrink/internal/history"
	"shrink/internal/stats"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleReport() batch.Report {
	var summary stats.Summary
	summary.Directory = "/videos"
	summary.AddSuccess(stats.NewFileResult(100, 50))
	summary.AddFailure()
	summary.Elapsed = 90 * time.Second
	return batch.Report{
		Summary: summary,
		Outcomes: []batch.Outcome{
			{
				Path:   "/videos/a.mp4",
				Output: "/videos/a_compressed.mp4",
				Result: stats.NewFileResult(100, 50),
			},
			{
				Path: "/videos/b.mkv",
				Err:  faults.Wrap(faults.ErrEncoding, "encode b.mkv", "corrupt stream", nil),
			},
		},
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	run := history.NewRun(sampleReport(), started)
	if run.ID == "" {
		t.Fatal("expected generated run id")
	}
	if err := store.RecordRun(ctx, run, sampleReport().Outcomes); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	got := runs[0]
	if got.Directory != "/videos" {
		t.Fatalf("unexpected directory %q", got.Directory)
	}
	if got.TotalFiles != 2 || got.Succeeded != 1 || got.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.OriginalMB != 100 || got.CompressedMB != 50 {
		t.Fatalf("unexpected size totals: %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Fatalf("unexpected start time %v", got.StartedAt)
	}
	if got.ElapsedSeconds != 90 {
		t.Fatalf("unexpected elapsed %v", got.ElapsedSeconds)
	}
}

func TestRunFilesPreserveOutcomeDetails(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := history.NewRun(sampleReport(), time.Now())
	if err := store.RecordRun(ctx, run, sampleReport().Outcomes); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}

	files, err := store.RunFiles(ctx, run.ID)
	if err != nil {
		t.Fatalf("RunFiles returned error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected two file rows, got %d", len(files))
	}
	if files[0].Status != "ok" || files[0].ReductionPct != 50 {
		t.Fatalf("unexpected success row: %+v", files[0])
	}
	if files[1].Status != "failed" || files[1].ErrorKind != "encoding" {
		t.Fatalf("unexpected failure row: %+v", files[1])
	}
	if files[1].ErrorText == "" {
		t.Fatal("expected diagnostic text to be stored")
	}
}

func TestRecentRunsOrderedNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	older := history.NewRun(sampleReport(), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	newer := history.NewRun(sampleReport(), time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	for _, run := range []history.Run{older, newer} {
		if err := store.RecordRun(ctx, run, nil); err != nil {
			t.Fatalf("RecordRun returned error: %v", err)
		}
	}

	runs, err := store.RecentRuns(ctx, 1)
	if err != nil {
		t.Fatalf("RecentRuns returned error: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != newer.ID {
		t.Fatalf("expected newest run first, got %+v", runs)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := history.Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	run := history.NewRun(sampleReport(), time.Now())
	if err := store.RecordRun(context.Background(), run, nil); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := history.Open(dir)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentRuns returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected persisted run after reopen, got %d", len(runs))
	}
}
