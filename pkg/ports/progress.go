package ports

// ProgressReporter receives frame-completion events during parallel
// patching. It is a side-effect-only observability concern; the pipeline
// never depends on it for correctness.
type ProgressReporter interface {
	// Start announces the total number of frames about to be processed.
	Start(total int)

	// Advance reports the cumulative number of completed frames.
	// It may be called from multiple goroutines.
	Advance(done int)

	// Finish marks the end of processing.
	Finish()
}
