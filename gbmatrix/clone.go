// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// Clone returns a deep copy of m; the result is never shallow (spec.md
// §4.2: "matrix_clone: deep copy; resulting matrix is never shallow").
func (m *Matrix) Clone() (*Matrix, error) {
	m.mu.Lock()
	if err := m.wait(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	out, err := New(m.typ, m.vlen, m.vdim, m.sparsity, m.sparsityControl)
	if err != nil {
		return nil, err
	}
	out.isCSC = m.isCSC
	out.hyperSwitch = m.hyperSwitch
	out.bitmapSwitch = m.bitmapSwitch

	live := m.collectLive()
	if err := out.rebuildFrom(live); err != nil {
		return nil, err
	}
	out.iso = m.iso
	if m.iso {
		out.X = []gbtype.Value{m.X[0]}
	}

	return out, nil
}

// Transplant moves src's non-shallow buffers into target, typecasting X if
// newType differs from src's type, and leaves src empty and invalid
// afterward. target's sparsityControl and hyper/bitmap thresholds are left
// unchanged (spec.md §4.2: "matrix_transplant ... changes neither target's
// sparsity_control nor its hyper/bitmap thresholds").
func Transplant(target, src *Matrix, newType *gbtype.Type, cast func(gbtype.Value) gbtype.Value) error {
	if target == nil || src == nil {
		return gbstatus.New(gbstatus.NullPointer, "gbmatrix.Transplant", "nil target or src")
	}

	src.mu.Lock()
	if err := src.wait(); err != nil {
		src.mu.Unlock()
		return err
	}
	live := src.collectLive()
	vlen, vdim, sparsity := src.vlen, src.vdim, src.sparsity
	iso, isoVal := src.iso, gbtype.Value(nil)
	if src.iso && len(src.X) > 0 {
		isoVal = src.X[0]
	}

	src.P, src.H, src.I, src.B, src.X = nil, nil, nil, nil, nil
	src.nvec, src.nvals, src.nzombies = 0, 0, 0
	src.vlen, src.vdim = 0, 0
	src.pending = newPendingQueue()
	src.mu.Unlock()

	if newType != nil && cast != nil {
		for idx := range live {
			live[idx].x = cast(live[idx].x)
		}
		if iso {
			isoVal = cast(isoVal)
		}
	}

	target.mu.Lock()
	defer target.mu.Unlock()

	if newType != nil {
		target.typ = newType
	}
	target.vlen, target.vdim, target.sparsity = vlen, vdim, sparsity
	target.iso = iso
	if err := target.rebuildFrom(live); err != nil {
		return err
	}
	if iso {
		target.iso = true
		target.X = []gbtype.Value{isoVal}
	}

	return nil
}
