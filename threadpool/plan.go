package threadpool

import "runtime"

// Policy selects how a Plan divides work across rows or columns (§4.5).
type Policy int

const (
	// Adaptive picks a worker count from the extent and GOMAXPROCS, capped
	// so that no partition is smaller than minChunk.
	Adaptive Policy = iota
	// Single always produces exactly one partition and never touches a
	// Pool: the caller runs inline on its own goroutine. This is the
	// policy determinism-across-thread-count tests pin against.
	Single
	// Fixed always produces exactly Threads partitions (clamped to the
	// extent), regardless of GOMAXPROCS.
	Fixed
)

// minChunk is the smallest number of rows (or columns) Adaptive will hand
// a single worker; below it, splitting further only adds synchronization
// overhead.
const minChunk = 16

// Plan describes how an axis's extent (row or column count) should be
// divided across workers. The zero Plan is Adaptive.
type Plan struct {
	Policy  Policy
	Threads int // meaningful only when Policy == Fixed
}

// NumPartitions resolves the plan to a concrete partition count for an
// axis of the given extent. The result never exceeds extent.
func (p Plan) NumPartitions(extent int) int {
	if extent <= 0 {
		return 0
	}
	switch p.Policy {
	case Single:
		return 1
	case Fixed:
		n := p.Threads
		if n <= 0 {
			n = 1
		}
		if n > extent {
			n = extent
		}
		return n
	default: // Adaptive
		n := runtime.GOMAXPROCS(0)
		if byChunk := extent / minChunk; byChunk < n {
			n = byChunk
		}
		if n < 1 {
			n = 1
		}
		if n > extent {
			n = extent
		}
		return n
	}
}

// Partitions splits [0, extent) into n contiguous, non-overlapping,
// gap-free ranges. The split point of any given (extent, n) pair is fixed,
// independent of how many goroutines actually execute it — the basis of
// libblur's bit-exact-regardless-of-thread-count guarantee (§8).
func Partitions(extent, n int) [][2]int {
	if extent <= 0 || n <= 0 {
		return nil
	}
	if n > extent {
		n = extent
	}
	chunk := (extent + n - 1) / n
	parts := make([][2]int, 0, n)
	for start := 0; start < extent; start += chunk {
		end := min(start+chunk, extent)
		parts = append(parts, [2]int{start, end})
	}
	return parts
}

// Run partitions [0, extent) per the plan and executes fn once per
// partition. Single runs fn inline without touching pool at all — pool
// may be nil in that case.
func (plan Plan) Run(pool *Pool, extent int, fn func(start, end int)) {
	if extent <= 0 {
		return
	}
	n := plan.NumPartitions(extent)
	parts := Partitions(extent, n)
	if plan.Policy == Single || pool == nil {
		for _, part := range parts {
			fn(part[0], part[1])
		}
		return
	}
	pool.Run(parts, fn)
}
