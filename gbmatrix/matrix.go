// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/gbmatrix/gbconfig"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// Sparsity names one of the four storage formats spec.md §2/§3 describes.
type Sparsity int

const (
	Hypersparse Sparsity = 1 << iota
	Sparse
	Bitmap
	Full
)

// SparsityMask is a bitwise-OR of allowed Sparsity values, the matrix's
// `sparsity_control` field (spec.md §3).
type SparsityMask int

// AnySparsity permits all four formats.
const AnySparsity = SparsityMask(Hypersparse | Sparse | Bitmap | Full)

// MaxIndex is GrB_INDEX_MAX (spec.md §8: "Maximum index GrB_INDEX_MAX =
// 2^60 − 1; building with any index ≥ 2^60 returns InvalidIndex"). Both
// dimensions and individual coordinates are bounded by it.
const MaxIndex = 1<<60 - 1

func (s Sparsity) String() string {
	switch s {
	case Hypersparse:
		return "hypersparse"
	case Sparse:
		return "sparse"
	case Bitmap:
		return "bitmap"
	case Full:
		return "full"
	}

	return "unknown"
}

var nextID int64

// Matrix is an n-by-m container over a single gbtype.Type, oriented by
// IsCSC (spec.md §3: "columns-then-rows when true, else rows-then-columns").
// Exactly one of the format-specific field groups is populated at a time,
// per the sparsity invariants in spec.md §3.
type Matrix struct {
	mu sync.RWMutex
	id int64

	typ   *gbtype.Type
	vlen  int // inner dimension
	vdim  int // outer dimension
	isCSC bool

	sparsity        Sparsity
	sparsityControl SparsityMask
	hyperSwitch     float64
	bitmapSwitch    float64

	// hyper/sparse fields
	plen int
	P    []int64 // length nvec+1
	H    []int64 // length nvec, hypersparse only
	I    []int64 // length P[nvec]; sign-flipped entries are zombies
	nvec int

	// bitmap field
	B []bool // length vlen*vdim

	// values; length 1 if iso, else matches the format's entry count
	X   []gbtype.Value
	iso bool

	nvals    int64
	nzombies int64
	jumbled  bool

	pending *pendingQueue

	shallow bool
}

// ID returns a process-unique identifier used only to fix lock-acquisition
// order across matrices (spec.md §5: "Locks are acquired in a fixed order
// (input ids ascending, then output)").
func (m *Matrix) ID() int64 { return m.id }

// New allocates an empty vlen-by-vdim matrix of the given type. sparsity
// picks the initial format (allocating P/H only if it forces hyper/sparse,
// per spec.md §4.2's matrix_new contract); control restricts which formats
// Convert/conform may later pick. Passing control == 0 permits all formats.
func New(t *gbtype.Type, vlen, vdim int, sparsity Sparsity, control SparsityMask) (*Matrix, error) {
	if t == nil {
		return nil, gbstatus.New(gbstatus.NullPointer, "gbmatrix.New", "nil type")
	}
	if vlen < 0 || vdim < 0 {
		return nil, gbstatus.Newf(gbstatus.InvalidValue, "gbmatrix.New", "negative dimension %dx%d", vlen, vdim)
	}
	if vlen > MaxIndex+1 || vdim > MaxIndex+1 {
		return nil, gbstatus.Newf(gbstatus.InvalidIndex, "gbmatrix.New", "dimension %dx%d exceeds GrB_INDEX_MAX", vlen, vdim)
	}
	if control == 0 {
		control = AnySparsity
	}
	if sparsity&Sparsity(control) == 0 {
		return nil, gbstatus.Newf(gbstatus.InvalidObject, "gbmatrix.New", "sparsity %v not in control mask", sparsity)
	}

	m := &Matrix{
		id:              atomic.AddInt64(&nextID, 1),
		typ:             t,
		vlen:            vlen,
		vdim:            vdim,
		isCSC:           gbconfig.DefaultOrientation() == gbconfig.ByColumn,
		sparsity:        sparsity,
		sparsityControl: control,
		hyperSwitch:     gbconfig.HyperSwitch(),
		bitmapSwitch:    gbconfig.BitmapSwitch(),
		pending:         newPendingQueue(),
	}

	switch sparsity {
	case Hypersparse:
		m.P = []int64{0}
		m.H = []int64{}
	case Sparse:
		m.P = make([]int64, vdim+1)
		m.nvec = vdim
	case Bitmap:
		m.B = make([]bool, vlen*vdim)
	case Full:
		m.X = make([]gbtype.Value, vlen*vdim)
	default:
		return nil, gbstatus.Newf(gbstatus.InvalidValue, "gbmatrix.New", "unknown sparsity %v", sparsity)
	}

	return m, nil
}

// Type returns the matrix's element type.
func (m *Matrix) Type() *gbtype.Type { return m.typ }

// NRows returns the row count (vlen if CSC-oriented, vdim otherwise).
func (m *Matrix) NRows() int {
	if m.isCSC {
		return m.vlen
	}

	return m.vdim
}

// NCols returns the column count.
func (m *Matrix) NCols() int {
	if m.isCSC {
		return m.vdim
	}

	return m.vlen
}

// NVals returns the number of present entries (authoritative for bitmap,
// derived and cached otherwise). Zombies are excluded.
func (m *Matrix) NVals() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.nvals
}

// IsCSC reports the matrix's orientation.
func (m *Matrix) IsCSC() bool { return m.isCSC }

// Sparsity returns the matrix's current storage format.
func (m *Matrix) Sparsity() Sparsity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sparsity
}

// Free releases non-shallow buffers; the header remains valid but empty
// (spec.md §4.2: "releases non-shallow buffers, leaves headers valid").
func (m *Matrix) Free() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shallow {
		m.P, m.H, m.I, m.B, m.X = nil, nil, nil, nil, nil
		m.shallow = false
		return
	}

	m.P, m.H, m.I, m.B, m.X = nil, nil, nil, nil, nil
	m.nvec, m.plen = 0, 0
	m.nvals, m.nzombies = 0, 0
	m.iso, m.jumbled = false, false
	m.pending = newPendingQueue()
}

// Clear empties the matrix back to its current sparsity's empty state
// without changing type, dimensions, or format-control fields.
func (m *Matrix) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.sparsity {
	case Hypersparse:
		m.P, m.H, m.I, m.X = []int64{0}, []int64{}, nil, nil
		m.nvec = 0
	case Sparse:
		m.P = make([]int64, m.vdim+1)
		m.I, m.X = nil, nil
		m.nvec = m.vdim
	case Bitmap:
		m.B = make([]bool, m.vlen*m.vdim)
		m.X = nil
	case Full:
		m.X = make([]gbtype.Value, m.vlen*m.vdim)
	}
	m.nvals, m.nzombies = 0, 0
	m.iso, m.jumbled = false, false
	m.pending = newPendingQueue()

	return nil
}
