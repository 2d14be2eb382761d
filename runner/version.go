package runner

// Build metadata, injected via -ldflags. The banner shows version and
// build date; Commit is kept for bug reports.
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "none"
)
