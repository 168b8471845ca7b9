// Package gbmul implements the masked, semiring-parametric matrix multiply
// of spec.md §4.4: mxm, plus vxm/mxv as constrained forms of mxm where one
// operand is an n×1 or 1×n matrix.
//
// What & Why:
//
//	The real engine picks among a dot-product kernel (§4.4.2, computes only
//	the (i,j) pairs a mask selects), a Gustavson/saxpy kernel (walks A's
//	columns scaled by B's entries), and a saxpy-5 fast path (§4.4.3, A held
//	bitmap/full so its column is read by direct index rather than merged).
//	This package computes every column the same way — accumulateColumn scales
//	each nonzero of A's column k by B(k,j) and folds the products through the
//	semiring's additive monoid, grouped via gbmatrix.ExtractTuples exactly as
//	gbewise's computeColumn groups its operands. chooseAlgorithm still picks
//	a label per §4.4.1's preconditions and is honored when the caller names
//	an explicit descriptor hint, but unlike gbewise's union/intersection
//	split (which does change the merge logic) the three mxm algorithms here
//	are arithmetically identical paths through one kernel; the label exists
//	for tracing and for Saxpy5's precondition check, not to change results.
//	This is the same kind of simplification gbmatrix's Wait/Convert and
//	gbewise's tensor-over-maps already make; see DESIGN.md.
//
// Complexity:
//
//	O(sum over columns j of B of (nnz(B(:,j)) * average nnz(A(:,k)))) —
//	Gustavson's bound, not the tighter dot-product bound a masked call could
//	achieve by skipping unselected (i,j) pairs before touching A at all.
package gbmul
