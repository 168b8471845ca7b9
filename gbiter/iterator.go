package gbiter

import (
	"sort"

	"github.com/katalvlaran/gbmatrix/descriptor"
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// SeekStatus is the three-valued outcome of a seek/next operation (spec.md
// §4.7: "returns Success (entry available), NoValue (row empty but
// valid), or Exhausted"). It is local to this package rather than folded
// into gbstatus.Code, since gbstatus's status enum is the closed set
// spec.md §6 names for public matrix/type calls, and iterator positioning
// is a distinct three-valued outcome the spec describes separately.
type SeekStatus int

const (
	// Found means the iterator is positioned on a live entry.
	Found SeekStatus = iota
	// Empty means the requested position was valid but has no entry.
	Empty
	// Exhausted means the requested position is out of range.
	Exhausted
)

type slot struct {
	outer, inner int64 // outer = row for a row iterator, col for a col one
	x             gbtype.Value
}

// axis is the shared implementation behind RowIterator and ColIterator: a
// walk over one axis (rows or columns) of a pre-materialized snapshot,
// each outer index carrying its sorted inner entries.
type axis struct {
	byOuter map[int64][]slot
	keys    []int64 // sorted distinct outer indices that have entries
	nOuter  int64   // upper bound on outer indices (spec.md §4.7 "kount")

	k int // index into keys; -1 when not positioned
	p int // index into byOuter[keys[k]]; -1 when not positioned
}

func (a *axis) attach(pairs [][2]int64, x []gbtype.Value, nOuter int64) {
	a.byOuter = make(map[int64][]slot)
	for idx, pair := range pairs {
		outer, inner := pair[0], pair[1]
		a.byOuter[outer] = append(a.byOuter[outer], slot{outer: outer, inner: inner, x: x[idx]})
	}
	a.keys = make([]int64, 0, len(a.byOuter))
	for k, entries := range a.byOuter {
		sort.Slice(entries, func(i, j int) bool { return entries[i].inner < entries[j].inner })
		a.byOuter[k] = entries
		a.keys = append(a.keys, k)
	}
	sort.Slice(a.keys, func(i, j int) bool { return a.keys[i] < a.keys[j] })
	a.nOuter = nOuter
	a.k, a.p = -1, -1
}

// kount is an upper bound on non-empty outer slices (spec.md §4.7); this
// snapshot's grouping already excludes empty slices, so len(keys) is both
// an upper bound and the exact count.
func (a *axis) kount() int64 { return int64(len(a.keys)) }

func (a *axis) seek(outer int64) SeekStatus {
	if outer < 0 || outer >= a.nOuter {
		a.k, a.p = -1, -1
		return Exhausted
	}

	idx := sort.Search(len(a.keys), func(n int) bool { return a.keys[n] >= outer })
	if idx >= len(a.keys) {
		a.k, a.p = len(a.keys), -1
		return Empty
	}
	a.k, a.p = idx, 0
	if a.keys[idx] == outer {
		return Found
	}

	return Empty
}

func (a *axis) kseek(k int) SeekStatus {
	if k < 0 || k >= len(a.keys) {
		a.k, a.p = -1, -1
		return Exhausted
	}
	a.k, a.p = k, 0

	return Found
}

func (a *axis) nextOuter() SeekStatus {
	if a.k < 0 {
		return Exhausted
	}
	next := a.k + 1
	if next >= len(a.keys) {
		a.k, a.p = len(a.keys), -1
		return Exhausted
	}
	a.k, a.p = next, 0

	return Found
}

func (a *axis) nextInner() SeekStatus {
	if a.k < 0 || a.k >= len(a.keys) || a.p < 0 {
		return Exhausted
	}
	entries := a.byOuter[a.keys[a.k]]
	if a.p+1 >= len(entries) {
		a.p = len(entries)

		return Empty
	}
	a.p++

	return Found
}

func (a *axis) positioned() (slot, bool) {
	if a.k < 0 || a.k >= len(a.keys) || a.p < 0 {
		return slot{}, false
	}
	entries := a.byOuter[a.keys[a.k]]
	if a.p >= len(entries) {
		return slot{}, false
	}

	return entries[a.p], true
}

// RowIterator walks a matrix row by row, rows in ascending order and, for
// each row, columns in ascending order (spec.md §4.7).
type RowIterator struct{ a axis }

// ColIterator walks a matrix column by column (spec.md §4.7 "matching
// col_iterator_*").
type ColIterator struct{ a axis }

// pairsByAxis extracts m's live entries as (outer, inner) pairs for the
// requested axis: row-major grouping puts the row in pairs[k][0], the
// column in pairs[k][1]; column-major grouping is the mirror.
func pairsByAxis(m *gbmatrix.Matrix, byRow bool) ([][2]int64, []gbtype.Value, int64, error) {
	I, J, X, err := m.ExtractTuples(nil)
	if err != nil {
		return nil, nil, 0, err
	}

	isCSC := m.IsCSC()
	pairs := make([][2]int64, len(I))
	for k := range I {
		row, col := J[k], I[k]
		if isCSC {
			row, col = I[k], J[k]
		}
		if byRow {
			pairs[k] = [2]int64{row, col}
		} else {
			pairs[k] = [2]int64{col, row}
		}
	}

	nOuter := int64(m.NCols())
	if byRow {
		nOuter = int64(m.NRows())
	}

	return pairs, X, nOuter, nil
}

// Attach binds the iterator to m's current contents (spec.md §4.7
// "attach_row(A, desc)"). desc is validated but otherwise unused: row/
// column-major materialization happens unconditionally since this
// package's walk is always built from a fresh snapshot rather than from
// m's live storage layout.
func (it *RowIterator) Attach(m *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	if m == nil {
		return gbstatus.New(gbstatus.NullPointer, "gbiter.RowIterator.Attach", "nil matrix")
	}
	if _, err := descriptor.Resolve(desc, "gbiter.RowIterator.Attach"); err != nil {
		return err
	}

	pairs, x, nOuter, err := pairsByAxis(m, true)
	if err != nil {
		return err
	}
	it.a.attach(pairs, x, nOuter)

	return nil
}

// Kount reports an upper bound on non-empty rows.
func (it *RowIterator) Kount() int64 { return it.a.kount() }

// SeekRow positions the iterator at row i's first entry, or the next
// non-empty row after it if row i is empty (spec.md §4.7 "seek_row").
func (it *RowIterator) SeekRow(i int64) SeekStatus { return it.a.seek(i) }

// KSeek positions the iterator at the k-th non-empty row.
func (it *RowIterator) KSeek(k int) SeekStatus { return it.a.kseek(k) }

// NextRow advances to the next non-empty row.
func (it *RowIterator) NextRow() SeekStatus { return it.a.nextOuter() }

// NextCol advances within the current row; returns Empty at the row's end.
func (it *RowIterator) NextCol() SeekStatus { return it.a.nextInner() }

// GetRowIndex returns the current row index; ok is false unless positioned
// on a live entry.
func (it *RowIterator) GetRowIndex() (row int64, ok bool) {
	s, ok := it.a.positioned()
	return s.outer, ok
}

// GetColIndex returns the current column index; ok is false unless
// positioned on a live entry.
func (it *RowIterator) GetColIndex() (col int64, ok bool) {
	s, ok := it.a.positioned()
	return s.inner, ok
}

// Value returns the current entry's value; ok is false unless positioned
// on a live entry.
func (it *RowIterator) Value() (x gbtype.Value, ok bool) {
	s, ok := it.a.positioned()
	return s.x, ok
}

// Attach binds the iterator to m's current contents, grouped by column.
func (it *ColIterator) Attach(m *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	if m == nil {
		return gbstatus.New(gbstatus.NullPointer, "gbiter.ColIterator.Attach", "nil matrix")
	}
	if _, err := descriptor.Resolve(desc, "gbiter.ColIterator.Attach"); err != nil {
		return err
	}

	pairs, x, nOuter, err := pairsByAxis(m, false)
	if err != nil {
		return err
	}
	it.a.attach(pairs, x, nOuter)

	return nil
}

// Kount reports an upper bound on non-empty columns.
func (it *ColIterator) Kount() int64 { return it.a.kount() }

// SeekCol positions the iterator at column j's first entry, or the next
// non-empty column after it if column j is empty.
func (it *ColIterator) SeekCol(j int64) SeekStatus { return it.a.seek(j) }

// KSeek positions the iterator at the k-th non-empty column.
func (it *ColIterator) KSeek(k int) SeekStatus { return it.a.kseek(k) }

// NextCol advances to the next non-empty column.
func (it *ColIterator) NextCol() SeekStatus { return it.a.nextOuter() }

// NextRow advances within the current column; returns Empty at its end.
func (it *ColIterator) NextRow() SeekStatus { return it.a.nextInner() }

// GetColIndex returns the current column index; ok is false unless
// positioned on a live entry.
func (it *ColIterator) GetColIndex() (col int64, ok bool) {
	s, ok := it.a.positioned()
	return s.outer, ok
}

// GetRowIndex returns the current row index; ok is false unless
// positioned on a live entry.
func (it *ColIterator) GetRowIndex() (row int64, ok bool) {
	s, ok := it.a.positioned()
	return s.inner, ok
}

// Value returns the current entry's value; ok is false unless positioned
// on a live entry.
func (it *ColIterator) Value() (x gbtype.Value, ok bool) {
	s, ok := it.a.positioned()
	return s.x, ok
}
