// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"sort"

	"github.com/katalvlaran/gbmatrix/gbtype"
)

// pendingEntry is one queued point-update: (i, j, x), combined with
// whatever is already present at (i,j) via op when Wait drains the queue.
// A nil op means "overwrite" (spec.md §3: "(i, j, x, op?) tuples").
type pendingEntry struct {
	i, j int
	x    gbtype.Value
	op   *gbtype.BinaryOp
	seq  int64 // arrival order, used as the sort's secondary key
}

// pendingQueue is the append-only log described in spec.md §3/§4.6.
type pendingQueue struct {
	entries []pendingEntry
	seq     int64
}

func newPendingQueue() *pendingQueue { return &pendingQueue{} }

func (q *pendingQueue) append(i, j int, x gbtype.Value, op *gbtype.BinaryOp) {
	q.entries = append(q.entries, pendingEntry{i: i, j: j, x: x, op: op, seq: q.seq})
	q.seq++
}

func (q *pendingQueue) len() int { return len(q.entries) }

// zombieFlip encodes/decodes a zombie by flipping the entry's sign bit
// (spec.md §3 invariant 6: "a zombie is encoded by flipping the sign/top
// bit of its I entry"). Applying it twice is the identity, so one function
// serves both directions.
func zombieFlip(i int64) int64 { return ^i }

func isZombie(i int64) bool { return i < 0 }

func zombieIndex(i int64) int64 {
	if i < 0 {
		return zombieFlip(i)
	}

	return i
}

// liveEntry is a materialized (i, j, x) triple used internally to rebuild
// a matrix's storage after Wait or a format Convert.
type liveEntry struct {
	i, j int64
	x    gbtype.Value
}

// collectLive walks whatever format m currently holds and returns every
// present, non-zombie entry. Callers must already hold at least a read
// lock (or exclusive ownership during construction).
func (m *Matrix) collectLive() []liveEntry {
	out := make([]liveEntry, 0, m.nvals)

	switch m.sparsity {
	case Full:
		for p := 0; p < len(m.X); p++ {
			i := int64(p % m.vlen)
			j := int64(p / m.vlen)
			out = append(out, liveEntry{i: i, j: j, x: m.valueAt(p)})
		}
	case Bitmap:
		for p := 0; p < len(m.B); p++ {
			if !m.B[p] {
				continue
			}
			i := int64(p % m.vlen)
			j := int64(p / m.vlen)
			out = append(out, liveEntry{i: i, j: j, x: m.valueAt(p)})
		}
	case Sparse:
		for k := 0; k < m.nvec; k++ {
			j := int64(k)
			for p := m.P[k]; p < m.P[k+1]; p++ {
				if isZombie(m.I[p]) {
					continue
				}
				out = append(out, liveEntry{i: m.I[p], j: j, x: m.valueAt(int(p))})
			}
		}
	case Hypersparse:
		for k := 0; k < m.nvec; k++ {
			j := m.H[k]
			for p := m.P[k]; p < m.P[k+1]; p++ {
				if isZombie(m.I[p]) {
					continue
				}
				out = append(out, liveEntry{i: m.I[p], j: j, x: m.valueAt(int(p))})
			}
		}
	}

	return out
}

// valueAt returns the boxed value stored at storage-slot p, honoring iso.
func (m *Matrix) valueAt(p int) gbtype.Value {
	if m.iso {
		return m.X[0]
	}
	if p < len(m.X) {
		return m.X[p]
	}

	return nil
}

// wait drains the pending queue per spec.md §4.6:
//  1. sort pending tuples by (j, i, arrival); reduce same-(j,i) runs by op
//  2. merge the reduced stream with existing live entries (pending wins
//     ties, applying op against the existing value when present)
//  3. zombies are dropped by collectLive already skipping them
//  4. clear jumbled, set nvals from the rebuilt structure
//  5. reformat per sparsityControl
//
// Callers must hold the exclusive (write) lock.
func (m *Matrix) wait() error {
	if m.pending.len() == 0 && !m.jumbled && m.nzombies == 0 {
		return nil
	}

	sort.SliceStable(m.pending.entries, func(a, b int) bool {
		ea, eb := m.pending.entries[a], m.pending.entries[b]
		if ea.j != eb.j {
			return ea.j < eb.j
		}
		if ea.i != eb.i {
			return ea.i < eb.i
		}

		return ea.seq < eb.seq
	})

	reduced := make(map[[2]int64]gbtype.Value, len(m.pending.entries))
	order := make([][2]int64, 0, len(m.pending.entries))
	for _, e := range m.pending.entries {
		key := [2]int64{int64(e.j), int64(e.i)}
		prev, ok := reduced[key]
		switch {
		case !ok:
			reduced[key] = e.x
			order = append(order, key)
		case e.op != nil:
			reduced[key] = e.op.Fn(prev, e.x)
		default:
			reduced[key] = e.x
		}
	}

	live := m.collectLive()
	liveIdx := make(map[[2]int64]int, len(live))
	for idx, le := range live {
		liveIdx[[2]int64{le.j, le.i}] = idx
	}

	for _, key := range order {
		j, i := key[0], key[1]
		if idx, ok := liveIdx[key]; ok {
			live[idx].x = reduced[key]
		} else {
			live = append(live, liveEntry{i: i, j: j, x: reduced[key]})
		}
	}

	m.pending = newPendingQueue()
	m.jumbled = false
	m.nzombies = 0

	return m.rebuildFrom(live)
}

// Wait resolves pending work (enqueued point updates, jumbled state, and
// zombies) and reformats per the matrix's sparsity control (spec.md §4.6).
// It is exported since algorithms above gbmatrix (gbewise, gbmul, gbgraph)
// must call it before a random lookup sees a consistent view.
func (m *Matrix) Wait() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.wait()
}

// HasPendingWork reports whether a read-only caller must invoke Wait before
// an ExtractElement-style random lookup (spec.md §4.5: "Before a random
// lookup, if pending work exists or the matrix is jumbled, invoke wait").
func (m *Matrix) HasPendingWork() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.pending.len() > 0 || m.jumbled
}
