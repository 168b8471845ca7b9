// Package gbconfig holds the small process-wide configuration spec.md §5
// calls out as legitimately shared mutable state: default orientation,
// hyper/bitmap format-transition thresholds, thread counts, the burble
// debug-trace flag, and print-function hooks. Everything here is
// immutable after init except through the setters, which take a package
// write lock (spec.md §5: "immutable after init except for explicit
// configuration setters which take a global write lock").
package gbconfig

import "sync"

// Orientation selects the default storage orientation for new matrices.
type Orientation int

const (
	// ByRow stores vectors along rows (is_csc = false).
	ByRow Orientation = iota
	// ByColumn stores vectors along columns (is_csc = true), the default
	// the teacher's own adjacency-matrix helpers assumed implicitly.
	ByColumn
)

// PrintFn is the hook invoked by burble tracing; nil disables tracing.
type PrintFn func(format string, args ...interface{})

var state = struct {
	mu             sync.RWMutex
	orientation    Orientation
	hyperSwitch    float64
	bitmapSwitch   float64
	nThreadsMax    int
	chunk          int64
	burble         bool
	print          PrintFn
}{
	orientation:  ByRow,
	hyperSwitch:  0.0625, // matches the real engine's default (1/16)
	bitmapSwitch: 0.1,
	nThreadsMax:  1,
	chunk:        64 * 1024,
}

// DefaultOrientation returns the current default matrix orientation.
func DefaultOrientation() Orientation {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return state.orientation
}

// SetDefaultOrientation updates the default matrix orientation.
func SetDefaultOrientation(o Orientation) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.orientation = o
}

// HyperSwitch returns the hypersparse transition threshold (spec.md §4.2:
// "nvec_nonempty / vdim < hyper_switch ... hypersparse").
func HyperSwitch() float64 {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return state.hyperSwitch
}

// SetHyperSwitch updates the hypersparse transition threshold.
func SetHyperSwitch(v float64) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.hyperSwitch = v
}

// BitmapSwitch returns the bitmap transition threshold (spec.md §4.2:
// "nnz / (vlen*vdim) >= bitmap_switch ... bitmap").
func BitmapSwitch() float64 {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return state.bitmapSwitch
}

// SetBitmapSwitch updates the bitmap transition threshold.
func SetBitmapSwitch(v float64) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.bitmapSwitch = v
}

// NThreadsMax returns the global default thread-count cap applied when a
// descriptor or context does not override it.
func NThreadsMax() int {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return state.nThreadsMax
}

// SetNThreadsMax updates the global default thread-count cap.
func SetNThreadsMax(n int) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if n < 1 {
		n = 1
	}
	state.nThreadsMax = n
}

// Chunk returns the global default chunk size used to derive thread count
// from work size (spec.md §5: "min(nthreads_max, ceil(work/chunk))").
func Chunk() int64 {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return state.chunk
}

// SetChunk updates the global default chunk size.
func SetChunk(c int64) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if c < 1 {
		c = 1
	}
	state.chunk = c
}

// Burble reports whether debug tracing is enabled.
func Burble() bool {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return state.burble
}

// SetBurble toggles debug tracing.
func SetBurble(on bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.burble = on
}

// SetPrintFn installs the hook burble tracing writes through; nil disables
// output even when Burble() is true.
func SetPrintFn(fn PrintFn) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.print = fn
}

// Trace writes a burble trace line if tracing is enabled and a print hook
// is installed. It is a no-op otherwise, so call sites never need to guard
// it with Burble() themselves.
func Trace(format string, args ...interface{}) {
	state.mu.RLock()
	burble, print := state.burble, state.print
	state.mu.RUnlock()

	if burble && print != nil {
		print(format, args...)
	}
}
