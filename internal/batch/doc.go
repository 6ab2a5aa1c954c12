// Package batch drives the sequential compression pipeline: discover videos,
// invoke the encoder per file, measure sizes, and feed the running aggregate.
//
// Control flow is a single linear pass. Per-file failures are recorded in the
// report and never abort the batch; only a bad input directory does.
package batch
