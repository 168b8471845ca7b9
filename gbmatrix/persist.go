// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"sync/atomic"

	"github.com/katalvlaran/gbmatrix/gbconfig"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// Snapshot is the exported view of a matrix's physical storage, the
// {header, payload} pair spec.md §6 describes as the persistence
// envelope: {type_code, vlen, vdim, is_csc, sparsity, iso, nvec, nvals}
// plus {P?, H?, B?, I?, X}. gbpersist builds its chunked envelope format
// on top of this rather than reaching into Matrix's unexported fields
// itself.
type Snapshot struct {
	TypeCode gbtype.Code
	Vlen     int
	Vdim     int
	IsCSC    bool
	Sparsity Sparsity
	Iso      bool
	Nvec     int
	Nvals    int64

	P []int64
	H []int64
	B []bool
	I []int64
	X []gbtype.Value

	// Control is the sparsityControl mask to apply on reconstruction; zero
	// means AnySparsity. gbpersist's Loader uses this to lock a matrix to
	// its declared format while chunks are still being replayed, then
	// widens it back via SetSparsityControl once loading completes.
	Control SparsityMask
}

// Snapshot materializes m's physical storage after resolving any pending
// work (spec.md §4.5: "Before ... export, invoke wait"). The returned
// slices are copies; mutating them does not affect m.
func (m *Matrix) Snapshot() (Snapshot, error) {
	m.mu.Lock()
	err := m.wait()
	m.mu.Unlock()
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		TypeCode: m.typ.Code,
		Vlen:     m.vlen,
		Vdim:     m.vdim,
		IsCSC:    m.isCSC,
		Sparsity: m.sparsity,
		Iso:      m.iso,
		Nvec:     m.nvec,
		Nvals:    m.nvals,
		Control:  m.sparsityControl,
	}
	if m.P != nil {
		s.P = append([]int64(nil), m.P...)
	}
	if m.H != nil {
		s.H = append([]int64(nil), m.H...)
	}
	if m.B != nil {
		s.B = append([]bool(nil), m.B...)
	}
	if m.I != nil {
		s.I = append([]int64(nil), m.I...)
	}
	if m.X != nil {
		s.X = append([]gbtype.Value(nil), m.X...)
	}

	return s, nil
}

// FromSnapshot reconstructs a matrix from a previously captured Snapshot,
// the loader side of spec.md §6's persistence envelope.
func FromSnapshot(t *gbtype.Type, s Snapshot) (*Matrix, error) {
	if t == nil {
		return nil, gbstatus.New(gbstatus.NullPointer, "gbmatrix.FromSnapshot", "nil type")
	}
	if t.Code != s.TypeCode {
		return nil, gbstatus.Newf(gbstatus.DomainMismatch, "gbmatrix.FromSnapshot", "type code %v does not match snapshot code %v", t.Code, s.TypeCode)
	}

	control := s.Control
	if control == 0 {
		control = AnySparsity
	}

	m := &Matrix{
		id:              atomic.AddInt64(&nextID, 1),
		typ:             t,
		vlen:            s.Vlen,
		vdim:            s.Vdim,
		isCSC:           s.IsCSC,
		sparsity:        s.Sparsity,
		sparsityControl: control,
		hyperSwitch:     gbconfig.HyperSwitch(),
		bitmapSwitch:    gbconfig.BitmapSwitch(),
		pending:         newPendingQueue(),
		iso:             s.Iso,
		nvec:            s.Nvec,
		nvals:           s.Nvals,
	}
	if s.P != nil {
		m.P = append([]int64(nil), s.P...)
	}
	if s.H != nil {
		m.H = append([]int64(nil), s.H...)
	}
	if s.B != nil {
		m.B = append([]bool(nil), s.B...)
	}
	if s.I != nil {
		m.I = append([]int64(nil), s.I...)
	}
	if s.X != nil {
		m.X = append([]gbtype.Value(nil), s.X...)
	}

	return m, nil
}

// SetSparsityControl replaces m's sparsity_control mask (spec.md §3). Used
// by gbpersist to widen a matrix back to AnySparsity once chunked loading
// completes, after having locked it to its declared format during replay.
func (m *Matrix) SetSparsityControl(mask SparsityMask) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mask == 0 {
		mask = AnySparsity
	}
	m.sparsityControl = mask
}
