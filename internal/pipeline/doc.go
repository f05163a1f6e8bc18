// Package pipeline orchestrates archive discovery, per-file processing, and
// batch summary reporting.
//
// The batch is best-effort: a malformed archive or a failed track command is
// reported and the run continues. Only a missing local directory is fatal,
// and that is checked by the caller before Run.
package pipeline
