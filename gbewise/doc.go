// Package gbewise implements the element-wise engine of spec.md §4.3:
// the union kernel (Matrix_add, via EWiseAdd) and the intersection kernel
// (Matrix_emult, via EWiseMult), both behind a shared eWise driver that
// resolves the descriptor, applies optional transposes, computes the
// tensor, then applies mask and accum.
//
// What & Why:
//
//	The real engine walks A(:,j) and B(:,j) by inner-index merge per
//	column, with galloping/binary-trim search when one side is much
//	denser (spec.md §4.3.2) and sub-vector pivot slicing for parallelism
//	(spec.md §4.3.3). This package extracts both operands' tuples once via
//	gbmatrix.ExtractTuples, groups them by column, and merges each
//	column's rows in order (the intersection gallops when one side is
//	much denser), so
//	the per-column merge-and-gallop runs over gbmatrix's exported tuple
//	API rather than over the raw storage arrays; the result tensor is a
//	map keyed by (i,j) (see DESIGN.md). Parallelism is coarser: see ewise.go's
//	use of gbmatrix.RunTasks over column ranges rather than per-column
//	pivot splitting.
//
// Complexity:
//
//	O(nnz(A) + nnz(B) + nnz(C)) per eWise call, dominated by the tuple
//	extractions and map builds rather than a single merge pass.
package gbewise
