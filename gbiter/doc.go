// Package gbiter implements read-only row/column iterators over a
// gbmatrix.Matrix (spec.md §4.7). An iterator snapshots the matrix's live
// entries at Attach time via ExtractTuples; mutating the underlying matrix
// afterward invalidates the iterator (spec.md §4.7: "mutating the
// underlying matrix invalidates [iterators]").
//
// What & Why:
//
//	The real engine walks P/H/I/X in place, row-major or column-major
//	depending on format, materializing a transpose only when storage
//	orientation fights the requested walk direction. This package instead
//	builds its walk order from the matrix's already-exported tuple API
//	(ExtractTuples), grouping by row or column once at Attach time. This
//	trades the in-place walk's locality for a single package boundary:
//	gbmatrix's storage fields are unexported, and duplicating format-aware
//	walk logic here would fork the container's own conform/collectLive
//	logic rather than reuse it.
//
// Complexity:
//
//	Attach is O(nvals log nvals) (one sort per axis). Seek/Next operations
//	are O(log k) or O(1) against the pre-grouped snapshot.
package gbiter
