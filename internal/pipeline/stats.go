package pipeline

// RunStats tracks aggregate counters across a batch run. Added counts
// archives whose identifier was extracted and handed to the registrar;
// Failed counts registrar invocations that did not succeed and is reported
// but never affects the process exit code.
type RunStats struct {
	Total   int
	Current int
	Added   int
	Skipped int
	Failed  int
}
