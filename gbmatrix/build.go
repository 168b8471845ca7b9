// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"sort"

	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// checkIndexCeiling rejects any coordinate at or beyond GrB_INDEX_MAX
// (spec.md §8: "Maximum index GrB_INDEX_MAX = 2^60 − 1; building with any
// index ≥ 2^60 returns InvalidIndex"), independent of the matrix's own
// vlen/vdim bound.
func checkIndexCeiling(where string, i, j int64) error {
	if i > MaxIndex || j > MaxIndex {
		return gbstatus.Newf(gbstatus.InvalidIndex, where, "(%d,%d) exceeds GrB_INDEX_MAX (2^60-1)", i, j)
	}

	return nil
}

// Build constructs m's entries from triplets (I, J, X), reducing duplicate
// (i,j) pairs with dup in input order (spec.md §4.5: "T(i,j) <- X[k1], then
// T(i,j) <- dup(T(i,j), X[k2]), ... associativity not required; input order
// fixes semantics"). m must be empty. A dup of nil is only valid when no
// duplicate (i,j) pair occurs; Build reports InvalidValue otherwise.
func (m *Matrix) Build(I, J []int64, X []gbtype.Value, dup *gbtype.BinaryOp) error {
	if len(I) != len(J) || len(I) != len(X) {
		return gbstatus.Newf(gbstatus.InvalidValue, "gbmatrix.Build", "mismatched lengths I=%d J=%d X=%d", len(I), len(J), len(X))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nvals != 0 || m.pending.len() != 0 {
		return gbstatus.New(gbstatus.OutputNotEmpty, "gbmatrix.Build", "matrix already has entries")
	}

	type triplet struct {
		i, j int64
		x    gbtype.Value
		seq  int
	}
	ts := make([]triplet, len(I))
	for k := range I {
		if err := checkIndexCeiling("gbmatrix.Build", I[k], J[k]); err != nil {
			return err
		}
		if I[k] < 0 || I[k] >= int64(m.vlen) || J[k] < 0 || J[k] >= int64(m.vdim) {
			return gbstatus.Newf(gbstatus.InvalidIndex, "gbmatrix.Build", "(%d,%d) out of bounds", I[k], J[k])
		}
		ts[k] = triplet{i: I[k], j: J[k], x: X[k], seq: k}
	}

	sort.SliceStable(ts, func(a, b int) bool {
		if ts[a].j != ts[b].j {
			return ts[a].j < ts[b].j
		}
		if ts[a].i != ts[b].i {
			return ts[a].i < ts[b].i
		}

		return ts[a].seq < ts[b].seq
	})

	var live []liveEntry
	i := 0
	for i < len(ts) {
		j := i + 1
		val := ts[i].x
		for j < len(ts) && ts[j].i == ts[i].i && ts[j].j == ts[i].j {
			if dup == nil {
				return gbstatus.Newf(gbstatus.InvalidValue, "gbmatrix.Build", "duplicate entry at (%d,%d) with nil dup", ts[i].i, ts[i].j)
			}
			val = dup.Fn(val, ts[j].x)
			j++
		}
		live = append(live, liveEntry{i: ts[i].i, j: ts[i].j, x: val})
		i = j
	}

	return m.rebuildFrom(live)
}

// BuildScalar produces an iso matrix: every present coordinate shares the
// single scalar x without consulting a dup operator (spec.md §4.5: "Scalar
// build (X length 1) produces an iso matrix without consulting dup").
func (m *Matrix) BuildScalar(I, J []int64, x gbtype.Value) error {
	if len(I) != len(J) {
		return gbstatus.Newf(gbstatus.InvalidValue, "gbmatrix.BuildScalar", "mismatched lengths I=%d J=%d", len(I), len(J))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nvals != 0 || m.pending.len() != 0 {
		return gbstatus.New(gbstatus.OutputNotEmpty, "gbmatrix.BuildScalar", "matrix already has entries")
	}

	seen := make(map[[2]int64]bool, len(I))
	live := make([]liveEntry, 0, len(I))
	for k := range I {
		if err := checkIndexCeiling("gbmatrix.BuildScalar", I[k], J[k]); err != nil {
			return err
		}
		if I[k] < 0 || I[k] >= int64(m.vlen) || J[k] < 0 || J[k] >= int64(m.vdim) {
			return gbstatus.Newf(gbstatus.InvalidIndex, "gbmatrix.BuildScalar", "(%d,%d) out of bounds", I[k], J[k])
		}
		key := [2]int64{J[k], I[k]}
		if seen[key] {
			continue
		}
		seen[key] = true
		live = append(live, liveEntry{i: I[k], j: J[k], x: x})
	}

	if err := m.rebuildFrom(live); err != nil {
		return err
	}
	m.iso = true
	m.X = []gbtype.Value{x}

	return nil
}

// ExtractTuples produces (I, J, X) from m in row-major (is_csc==false) or
// column-major (is_csc==true) order (spec.md §4.5). cast, when non-nil, is
// applied to every extracted value. Iso matrices expand the
// scalar to NVals copies.
func (m *Matrix) ExtractTuples(cast func(gbtype.Value) gbtype.Value) (I, J []int64, X []gbtype.Value, err error) {
	m.mu.Lock()
	werr := m.wait()
	m.mu.Unlock()
	if werr != nil {
		return nil, nil, nil, werr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	live := m.collectLive()
	sort.SliceStable(live, func(a, b int) bool {
		if live[a].j != live[b].j {
			return live[a].j < live[b].j
		}

		return live[a].i < live[b].i
	})

	I = make([]int64, len(live))
	J = make([]int64, len(live))
	X = make([]gbtype.Value, len(live))
	for idx, le := range live {
		I[idx], J[idx] = le.i, le.j
		if cast != nil {
			X[idx] = cast(le.x)
		} else {
			X[idx] = le.x
		}
	}

	return I, J, X, nil
}

// SetElement enqueues a point-update for (i,j); it is resolved the next
// time Wait runs (spec.md §3: "Insertions via point-updates enqueue (i, j,
// x, op) rather than mutate I/P/X directly").
func (m *Matrix) SetElement(i, j int, x gbtype.Value, accum *gbtype.BinaryOp) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := checkIndexCeiling("gbmatrix.SetElement", int64(i), int64(j)); err != nil {
		return err
	}
	if i < 0 || i >= m.vlen || j < 0 || j >= m.vdim {
		return gbstatus.Newf(gbstatus.InvalidIndex, "gbmatrix.SetElement", "(%d,%d) out of bounds", i, j)
	}

	m.pending.append(i, j, x, accum)

	return nil
}

// ExtractElement looks up (i,j), resolving pending work first if needed
// (spec.md §4.5: "Before a random lookup, if pending work exists or the
// matrix is jumbled, invoke wait"). ok is false and err is nil when the
// entry is structurally absent (NoValue).
func (m *Matrix) ExtractElement(i, j int) (x gbtype.Value, ok bool, err error) {
	m.mu.Lock()
	werr := m.wait()
	m.mu.Unlock()
	if werr != nil {
		return nil, false, werr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= m.vlen || j < 0 || j >= m.vdim {
		return nil, false, gbstatus.Newf(gbstatus.InvalidIndex, "gbmatrix.ExtractElement", "(%d,%d) out of bounds", i, j)
	}

	switch m.sparsity {
	case Full:
		return m.valueAt(j*m.vlen + i), true, nil
	case Bitmap:
		p := j*m.vlen + i
		if !m.B[p] {
			return nil, false, nil
		}

		return m.valueAt(p), true, nil
	case Sparse:
		k := j
		if k >= m.nvec {
			return nil, false, nil
		}

		return m.searchSlice(int(m.P[k]), int(m.P[k+1]), int64(i))
	case Hypersparse:
		k := sort.Search(len(m.H), func(n int) bool { return m.H[n] >= int64(j) })
		if k >= len(m.H) || m.H[k] != int64(j) {
			return nil, false, nil
		}

		return m.searchSlice(int(m.P[k]), int(m.P[k+1]), int64(i))
	}

	return nil, false, nil
}

// searchSlice binary searches I[lo:hi) for row index i, skipping zombie
// entries structurally (a zombie never matches).
func (m *Matrix) searchSlice(lo, hi int, i int64) (gbtype.Value, bool, error) {
	n := sort.Search(hi-lo, func(k int) bool { return zombieIndex(m.I[lo+k]) >= i })
	p := lo + n
	if p >= hi || zombieIndex(m.I[p]) != i || isZombie(m.I[p]) {
		return nil, false, nil
	}

	return m.valueAt(p), true, nil
}
