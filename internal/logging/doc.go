// Package logging builds the slog loggers used across shrink.
//
// The console handler emits compact "ts LEVEL msg key=value" lines on stderr;
// the json handler is meant for machine consumption. Batch report output goes
// to stdout and never through this package.
package logging
