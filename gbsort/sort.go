// Package gbsort implements the key sorts of spec.md §4.9: a plain int64
// sort, the same sort with a parallel payload permutation, and stable
// sorts over 2- or 3-key lexicographic records. All of them run on the
// calling goroutine. gbmatrix's build, wait and extractTuples do their own
// sorting with sort.SliceStable and do not call this package.
package gbsort

import "sort"

// Qsort1a sorts a in place by value (spec.md §4.9: "qsort_1a: sort
// int64[n]"). Go's sort.Slice is not guaranteed stable; for a bare int64
// slice equal keys are indistinguishable, so the order among them does
// not matter.
func Qsort1a(a []int64) {
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
}

// Qsort1b sorts a by value while permuting payload identically (spec.md
// §4.9: "sort int64[n] as primary key while permuting a parallel ... array
// of opaque size-sized records identically"). payload is any slice with
// the same length as a; swap must exchange payload[i] and payload[j].
func Qsort1b(a []int64, n int, swap func(i, j int)) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return a[idx[i]] < a[idx[j]] })

	// Apply the permutation in place by following its cycles: position i's
	// final value comes from idx[i], so walk each cycle swapping elements
	// into place until it closes back on its start.
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		if done[i] {
			continue
		}
		j := i
		for {
			done[j] = true
			next := idx[j]
			if next == i {
				break
			}
			swap(j, next)
			a[j], a[next] = a[next], a[j]
			j = next
		}
	}
}

// Key2 is one record sorted by Msort2: two lexicographic keys plus an
// opaque payload index into the caller's parallel arrays.
type Key2 struct {
	K0, K1 int64
	Idx    int
}

// Msort2 stable-sorts recs lexicographically by (K0, K1) (spec.md §4.9:
// "msort_2 ... sort 2 ... key arrays with explicit workspace; the
// comparator is lexicographic across keys"). The "explicit workspace" the
// real engine allocates for its parallel merge is this function's local
// merge buffer; Go's sort.SliceStable already amortizes that allocation,
// so no caller-visible workspace parameter is needed.
func Msort2(recs []Key2) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].K0 != recs[j].K0 {
			return recs[i].K0 < recs[j].K0
		}

		return recs[i].K1 < recs[j].K1
	})
}

// Key3 is one record sorted by Msort3: three lexicographic keys.
type Key3 struct {
	K0, K1, K2 int64
	Idx        int
}

// Msort3 stable-sorts recs lexicographically by (K0, K1, K2).
func Msort3(recs []Key3) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].K0 != recs[j].K0 {
			return recs[i].K0 < recs[j].K0
		}
		if recs[i].K1 != recs[j].K1 {
			return recs[i].K1 < recs[j].K1
		}

		return recs[i].K2 < recs[j].K2
	})
}
