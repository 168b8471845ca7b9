// Package gbpersist implements the persistence envelope of spec.md §6: a
// matrix's physical storage serialized as {header, payload}, optionally
// sharded into chunks a caller streams independently.
//
// What & Why:
//
//	Export captures a gbmatrix.Snapshot (forcing a Wait first, so pending
//	work never leaks into the envelope) and copies it into Header/Payload.
//	Import is the inverse via gbmatrix.FromSnapshot. EncodeChunks/Loader
//	split the payload into pieces no larger than a caller-chosen size, each
//	one declaring the (field, count) pairs spec.md §6 calls the chunk's
//	"schema" (a chunk may carry only part of one field, or several fields
//	back to back); Loader replays them in any order, locks the
//	reconstructed matrix to its declared format while replay is in
//	progress, and once every declared chunk has arrived, widens the format
//	lock back to AnySparsity and calls Wait — spec.md §6's "clears any
//	'loading' policy override and applies pending work."
//
//	This package is deliberately not an RDB encoder: no Redis key layout,
//	no module-config glue, no `.rdb` AOF framing (spec.md §1 Non-goals).
//	No third-party serialization library appears anywhere in the corpus
//	this module is grounded on, so field encoding uses only
//	encoding/binary and encoding/gob from the standard library (see
//	DESIGN.md).
//
// Complexity:
//
//	Export/Import are O(nnz). EncodeChunks is O(nnz/chunkSize) chunks,
//	each O(chunkSize) to build; Loader.Feed is O(chunk payload size).
package gbpersist
