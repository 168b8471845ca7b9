// SPDX-License-Identifier: MIT

// Package gbmatrix implements the sparse matrix container: four storage
// formats (hypersparse, sparse, bitmap, full), format conversion governed
// by density thresholds, a pending-update queue with zombie bookkeeping,
// bulk build-from-triplets and extract-tuples, and random-access element
// get/set — the data structure every kernel in this module (gbewise,
// gbmul, gbiter, gbpersist) operates on.
//
// What & Why:
//
//	spec.md §3 describes one Matrix record that can represent any of four
//	sparsity formats rather than four distinct Go types, so that a single
//	set of invariants (pending work, zombies, ownership) applies uniformly
//	regardless of which format a matrix currently holds. This mirrors how
//	matrix/impl_dense.go kept one Dense type rather than splitting
//	dense/sparse representations, generalized here to four formats instead
//	of one.
//
// Concurrency:
//
//	Each Matrix owns one sync.RWMutex (spec.md §5: "each matrix has an
//	associated read-write lock"). Element-wise/matmul/extract/iteration
//	hold the read lock; wait/transplant/conversion/build hold the write
//	lock. No function holds the locks of two matrices at once: Transplant
//	releases src's lock before it takes target's, so no cross-matrix lock
//	order is imposed.
package gbmatrix
