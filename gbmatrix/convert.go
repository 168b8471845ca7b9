// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"sort"

	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// rebuildFrom replaces m's storage with the canonical sparse form of the
// given live entries, then conforms to whichever format the sparsity
// thresholds and control mask select (spec.md §4.2). Callers must hold the
// exclusive lock.
func (m *Matrix) rebuildFrom(live []liveEntry) error {
	sort.SliceStable(live, func(a, b int) bool {
		if live[a].j != live[b].j {
			return live[a].j < live[b].j
		}

		return live[a].i < live[b].i
	})

	P := make([]int64, m.vdim+1)
	I := make([]int64, len(live))
	X := make([]gbtype.Value, len(live))
	col := 0
	for idx, le := range live {
		for int64(col) < le.j {
			col++
			P[col] = int64(idx)
		}
		I[idx] = le.i
		X[idx] = le.x
	}
	for col < m.vdim {
		col++
		P[col] = int64(len(live))
	}

	m.sparsity = Sparse
	m.P, m.I, m.X, m.H = P, I, X, nil
	m.nvec = m.vdim
	m.iso = false
	m.nvals = int64(len(live))
	m.nzombies = 0
	m.jumbled = false

	return m.conform()
}

// nonEmptyOuterSlices counts outer indices k with P[k+1] > P[k] (spec.md
// §4.2's nvec_nonempty).
func (m *Matrix) nonEmptyOuterSlices() int {
	count := 0
	for k := 0; k < m.nvec; k++ {
		if m.P[k+1] > m.P[k] {
			count++
		}
	}

	return count
}

// conform converts m to the format its density and sparsityControl select
// (spec.md §4.2's table), starting from the canonical sparse form
// rebuildFrom just produced. Callers must hold the exclusive lock.
func (m *Matrix) conform() error {
	allowed := m.sparsityControl
	if allowed == 0 {
		allowed = AnySparsity
	}

	vdim := m.vdim
	if vdim == 0 {
		return nil
	}

	nonEmpty := m.nonEmptyOuterSlices()
	total := int64(m.vlen) * int64(m.vdim)

	want := Sparse
	switch {
	case total > 0 && m.nvals == total && allowed&SparsityMask(Full) != 0:
		want = Full
	case total > 0 && float64(m.nvals)/float64(total) >= m.bitmapSwitch && allowed&SparsityMask(Bitmap) != 0:
		want = Bitmap
	case float64(nonEmpty)/float64(vdim) < m.hyperSwitch && allowed&SparsityMask(Hypersparse) != 0:
		want = Hypersparse
	case allowed&SparsityMask(Sparse) != 0:
		want = Sparse
	case allowed&SparsityMask(Hypersparse) != 0:
		want = Hypersparse
	case allowed&SparsityMask(Bitmap) != 0:
		want = Bitmap
	case allowed&SparsityMask(Full) != 0:
		want = Full
	}

	return m.convertTo(want)
}

// Convert transitions m to the requested format, preserving every entry's
// value and (i,j) coordinate (spec.md §4.2: "Conversions preserve entry
// values and their (i,j) coordinates; they may reorder storage but not
// semantics"). It first resolves pending work.
func (m *Matrix) Convert(to Sparsity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.wait(); err != nil {
		return err
	}

	return m.convertTo(to)
}

// convertTo performs the actual transition; m must already be in canonical
// sparse form with no pending work, jumbling, or zombies. Callers must hold
// the exclusive lock.
func (m *Matrix) convertTo(to Sparsity) error {
	if m.sparsityControl != 0 && to&Sparsity(m.sparsityControl) == 0 {
		return gbstatus.Newf(gbstatus.InvalidObject, "gbmatrix.Convert", "format %v not permitted by sparsity control", to)
	}
	if m.sparsity == to {
		return nil
	}

	live := m.collectLive()
	switch to {
	case Sparse:
		return m.toSparse(live)
	case Hypersparse:
		return m.toHypersparse(live)
	case Bitmap:
		return m.toBitmap(live)
	case Full:
		return m.toFull(live)
	}

	return gbstatus.Newf(gbstatus.InvalidValue, "gbmatrix.Convert", "unknown sparsity %v", to)
}

func (m *Matrix) toSparse(live []liveEntry) error {
	P := make([]int64, m.vdim+1)
	I := make([]int64, len(live))
	X := make([]gbtype.Value, len(live))
	col := 0
	for idx, le := range live {
		for int64(col) < le.j {
			col++
			P[col] = int64(idx)
		}
		I[idx] = le.i
		X[idx] = le.x
	}
	for col < m.vdim {
		col++
		P[col] = int64(len(live))
	}

	m.sparsity, m.P, m.H, m.I, m.X, m.B = Sparse, P, nil, I, X, nil
	m.nvec = m.vdim
	m.iso = false

	return nil
}

func (m *Matrix) toHypersparse(live []liveEntry) error {
	var P, H, I []int64
	var X []gbtype.Value
	P = append(P, 0)
	var curCol int64 = -1
	for idx, le := range live {
		if le.j != curCol {
			if curCol != -1 {
				P = append(P, int64(idx))
			}
			curCol = le.j
			H = append(H, curCol)
		}
		I = append(I, le.i)
		X = append(X, le.x)
	}
	if len(H) > 0 {
		P = append(P, int64(len(live)))
	}

	m.sparsity, m.P, m.H, m.I, m.X, m.B = Hypersparse, P, H, I, X, nil
	m.nvec = len(H)
	m.iso = false

	return nil
}

func (m *Matrix) toBitmap(live []liveEntry) error {
	B := make([]bool, m.vlen*m.vdim)
	X := make([]gbtype.Value, m.vlen*m.vdim)
	for _, le := range live {
		p := int(le.j)*m.vlen + int(le.i)
		B[p] = true
		X[p] = le.x
	}

	m.sparsity, m.B, m.X, m.P, m.H, m.I = Bitmap, B, X, nil, nil, nil
	m.iso = false

	return nil
}

func (m *Matrix) toFull(live []liveEntry) error {
	if int64(len(live)) != int64(m.vlen)*int64(m.vdim) {
		return gbstatus.New(gbstatus.InvalidObject, "gbmatrix.Convert", "cannot convert to full: not every entry present")
	}

	X := make([]gbtype.Value, m.vlen*m.vdim)
	for _, le := range live {
		X[int(le.j)*m.vlen+int(le.i)] = le.x
	}

	m.sparsity, m.X, m.B, m.P, m.H, m.I = Full, X, nil, nil, nil, nil
	m.iso = false

	return nil
}
