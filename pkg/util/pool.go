package util

import "runtime"

// OptimalPoolSize returns the worker count for parallel file scanning.
//
// Formula: min(max(runtime.NumCPU(), 2), 16). A scan pass is pure CPU over
// in-memory bytes, so one worker per core saturates the machine; the floor
// keeps small machines from serializing and the cap keeps channel buffers
// bounded on large ones.
func OptimalPoolSize() int {
	n := runtime.NumCPU()
	if n < 2 {
		n = 2
	}
	if n > 16 {
		n = 16
	}
	return n
}

// OptimalPoolSizeWithOverride returns override when positive, otherwise the
// computed pool size. The override exists for tests and tuning.
func OptimalPoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return OptimalPoolSize()
}
