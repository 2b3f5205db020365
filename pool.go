package md2txt

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps explicit worker requests.
	MaxWorkers = 32

	// maxAutoWorkers caps the automatic choice; conversion is CPU bound and
	// file I/O dominates beyond this.
	maxAutoWorkers = 8
)

// ResolveWorkers determines how many documents to convert in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		if workers > MaxWorkers {
			return MaxWorkers
		}
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
