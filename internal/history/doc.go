// Package history records completed batch runs in a SQLite database so past
// compression results stay inspectable from the CLI.
//
// The store is append-only from the runner's point of view: one row per batch
// plus one row per processed file. It is an optional feature; disabling it in
// config removes the only persisted state the tool has.
package history
