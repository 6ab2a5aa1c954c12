package batch

import "shrink/internal/stats"

// Reporter receives batch progress events. Implementations render them for
// the user; the runner itself never prints.
type Reporter interface {
	BatchStarted(dir string, total int)
	FileStarted(index, total int, name string)
	FileSucceeded(name string, result stats.FileResult)
	FileFailed(name string, err error)
	BatchFinished(summary stats.Summary)
}

// NullReporter discards all events.
type NullReporter struct{}

func (NullReporter) BatchStarted(string, int)               {}
func (NullReporter) FileStarted(int, int, string)           {}
func (NullReporter) FileSucceeded(string, stats.FileResult) {}
func (NullReporter) FileFailed(string, error)               {}
func (NullReporter) BatchFinished(stats.Summary)            {}

var _ Reporter = NullReporter{}
